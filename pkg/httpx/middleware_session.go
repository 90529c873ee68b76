package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/defensedrill/auth/pkg/slogx"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "jwt"

// SessionAuthenticator resolves a raw token to a live principal. It must
// verify the token signature and expiry, then confirm the subject still
// exists in the user directory, returning that record's current roles.
type SessionAuthenticator interface {
	AuthenticateToken(ctx context.Context, token string) (username string, roles []string, err error)
}

// SessionMiddleware attaches the caller's identity to the request context
// when a valid session token is present. It is opportunistic: a missing,
// malformed, or stale token never fails the request, it simply leaves the
// request unauthenticated for downstream authorization checks to reject.
func SessionMiddleware(auth SessionAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := sessionToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			username, roles, err := auth.AuthenticateToken(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("session token rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUsername, username)
			ctx = context.WithValue(ctx, CtxKeyRoles, roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionToken extracts the raw token from the session cookie, falling back
// to an Authorization bearer header for non-browser clients.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	return ""
}
