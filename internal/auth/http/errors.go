package http

import (
	"errors"
	"net/http"

	"github.com/defensedrill/auth/internal/auth/service"
	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/pkg/httpx"
	"github.com/defensedrill/auth/pkg/slogx"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorResponse is the single error body shape every endpoint uses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError translates service and store errors into HTTP responses. It is
// the only place error kinds map to status codes, so handlers just bubble
// errors up to it.
//
// Credential failures are deliberately vague: unknown user, wrong password,
// and missing role all produce the same body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
		httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid username or password",
		})

	case errors.As(err, &verrs):
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: verrs.Error(),
		})

	case errors.Is(err, service.ErrInvalidRoles):
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_roles",
			Message: "Role list contains an unknown role",
		})

	case errors.Is(err, service.ErrMissingID):
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "missing_id",
			Message: "An id is required",
		})

	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "No such user",
		})

	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteJSON(w, http.StatusConflict, ErrorResponse{
			Error:   "already_exists",
			Message: "Username is already taken",
		})

	case errors.Is(err, store.ErrConflict):
		httpx.WriteJSON(w, http.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: "The record was modified concurrently, retry with fresh data",
		})

	default:
		slogx.FromContext(r.Context()).Error("internal error", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "server_error",
			Message: "Internal server error",
		})
	}
}
