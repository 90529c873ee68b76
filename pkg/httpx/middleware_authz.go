package httpx

import (
	"net/http"
	"strings"
)

// RequireRole rejects requests whose principal does not hold the given role.
// Role comparison is case-insensitive. Unauthenticated requests get 401,
// authenticated requests missing the role get 403.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if UsernameFromContext(ctx) == "" {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "authentication required",
				})
				return
			}

			for _, have := range RolesFromContext(ctx) {
				if strings.EqualFold(have, role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			WriteJSON(w, http.StatusForbidden, map[string]string{
				"error":   "forbidden",
				"message": "insufficient privileges",
			})
		})
	}
}
