package utils

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the failure envelope every endpoint shares.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]any{"success": false, "message": msg})
}
