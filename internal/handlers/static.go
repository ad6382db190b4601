package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

// Static serves the client pages from dir, falling back to 404.html (with a
// 404 status) for unknown paths. API paths never reach this handler.
func Static(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		p := filepath.Clean("/" + strings.TrimPrefix(r.URL.Path, "/"))
		if p == "/" {
			p = "/index.html"
		}
		if info, err := os.Stat(filepath.Join(dir, p)); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}

		body, err := os.ReadFile(filepath.Join(dir, "404.html"))
		if err != nil {
			utils.Error(w, http.StatusNotFound, "Not found")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(body)
	}
}
