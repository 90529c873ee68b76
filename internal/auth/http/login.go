package http

import (
	"net/http"
	"strings"

	"github.com/defensedrill/auth/internal/auth/service"
)

// LoginHandler implements the browser-facing form login flow. On success the
// session token is delivered as an HttpOnly cookie and the browser is
// redirected, so the token never touches page scripts.
type LoginHandler struct {
	AuthService *service.AuthService
	Production  bool
}

// HandleLogin handles POST /login
//
//	@Summary		Form login
//	@Description	Authenticates an HTML form post and sets the session cookie.
//	@Description	Redirects with 303 See Other on success so a refresh never replays the POST.
//	@Tags			Authentication
//	@Accept			x-www-form-urlencoded
//	@Param			username	form	string	true	"Username"
//	@Param			password	form	string	true	"Password"
//	@Param			redirect	form	string	false	"Same-site path to land on after login"
//	@Success		303
//	@Failure		401	{object}	ErrorResponse	"error, message"
//	@Router			/login [post].
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, r, service.ErrInvalidCredentials)
		return
	}

	token, ttl, err := h.AuthService.Authenticate(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, sessionCookie(token, ttl, h.Production))
	http.Redirect(w, r, safeRedirect(r.PostFormValue("redirect")), http.StatusSeeOther)
}

// HandleLogout handles GET /logout
//
//	@Summary		Logout
//	@Description	Clears the session cookie and redirects to the landing page.
//	@Description	The token itself stays valid until expiry; logout only removes it from the browser.
//	@Tags			Authentication
//	@Success		303
//	@Router			/logout [get].
func (h *LoginHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, clearSessionCookie(h.Production))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeRedirect keeps post-login redirects on our own origin. Anything that
// is not a plain absolute path falls back to "/".
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}
