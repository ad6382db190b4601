package middleware

import (
	"net/http"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"

	"github.com/rs/zerolog"
)

func Recoverer(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					l.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("panic")
					utils.Error(w, http.StatusInternalServerError, "Internal Server Error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
