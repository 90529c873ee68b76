package http

import (
	"net/http"
	"time"

	"github.com/defensedrill/auth/pkg/httpx"
)

// sessionCookie builds the browser session cookie. The Secure flag is only
// set in production so plain-HTTP local development still works.
func sessionCookie(token string, ttl time.Duration, prod bool) *http.Cookie {
	return &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   prod,
		SameSite: http.SameSiteStrictMode,
	}
}

// clearSessionCookie expires the session cookie immediately. MaxAge -1
// serializes as Max-Age=0, which tells the browser to drop it.
func clearSessionCookie(prod bool) *http.Cookie {
	c := sessionCookie("", 0, prod)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
