package http

import (
	"encoding/json"
	"net/http"

	"github.com/defensedrill/auth/internal/auth/service"
	"github.com/defensedrill/auth/pkg/httpx"
)

// AuthenticateHandler issues session tokens for API clients.
type AuthenticateHandler struct {
	AuthService *service.AuthService
}

// Handle handles POST /authenticate
//
//	@Summary		Authenticate
//	@Description	Exchanges username/password credentials for a signed session token.
//	@Description	Token lifetime depends on the user's roles; users without roles cannot authenticate.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CredentialsRequest	true	"Credentials"
//	@Success		200		{object}	TokenResponse		"token, token_type, expires_in"
//	@Failure		400		{object}	ErrorResponse		"error, message"
//	@Failure		401		{object}	ErrorResponse		"error, message"
//	@Router			/authenticate [post].
func (h *AuthenticateHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON in request body",
		})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	token, ttl, err := h.AuthService.Authenticate(ctx, req.Name, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(ttl.Seconds()),
	})
}

// HandleForRole handles POST /authenticate/{role}
//
//	@Summary		Authenticate for a role
//	@Description	Like /authenticate, but the user must additionally hold the named role.
//	@Description	A missing role is indistinguishable from bad credentials.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			role	path		string				true	"Required role, e.g. ADMIN"
//	@Param			request	body		CredentialsRequest	true	"Credentials"
//	@Success		200		{object}	TokenResponse		"token, token_type, expires_in"
//	@Failure		400		{object}	ErrorResponse		"error, message"
//	@Failure		401		{object}	ErrorResponse		"error, message"
//	@Router			/authenticate/{role} [post].
func (h *AuthenticateHandler) HandleForRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	role := r.PathValue("role")

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON in request body",
		})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	token, ttl, err := h.AuthService.AuthenticateForRole(ctx, req.Name, req.Password, role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(ttl.Seconds()),
	})
}
