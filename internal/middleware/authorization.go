package middleware

import (
	"net/http"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

// RequireRoles blocks unless the request carries a verified identity whose
// role is in the allowed list. Missing, malformed, and expired tokens all
// land here identically: no identity in context.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, ok := utils.GetInt64(r.Context(), CtxUserID)
			if !ok || uid == 0 {
				utils.Error(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}
			role, _ := utils.GetString(r.Context(), CtxRole)
			if _, ok := allowed[role]; !ok {
				utils.Error(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
