package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

type ctxKey string

const (
	CtxUserID ctxKey = "uid"
	CtxRole   ctxKey = "role"
)

// WithAuth reads a bearer token (or session cookie) and, when it verifies,
// stores the subject id and role in the request context. Unauthenticated and
// bad-token requests pass through; protected routes gate via RequireRoles.
func WithAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tok string
			if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimPrefix(h, "Bearer ")
			} else if c, err := r.Cookie("session"); err == nil {
				tok = c.Value
			}

			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.ParseJWT(jwtSecret, tok)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
			ctx = context.WithValue(ctx, CtxRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
