package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/defensedrill/auth/internal/auth/service"
	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/pkg/httpx"
)

// UsersHandler exposes the admin-only user directory CRUD.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate handles POST /user
//
//	@Summary		Create user
//	@Description	Creates a directory user. The Location header points at the new record.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		UserRequest		true	"User to create"
//	@Success		201		{object}	UserResponse	"the created user"
//	@Failure		400		{object}	ErrorResponse	"error, message"
//	@Failure		409		{object}	ErrorResponse	"error, message"
//	@Router			/user [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := decodeUserRequest(w, r)
	if !ok {
		return
	}

	u, err := h.UserService.Create(ctx, req.Name, req.Password, req.Roles)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/user/id/%d", u.ID))
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// HandleList handles GET /user
//
//	@Summary		List users
//	@Description	Returns every user ordered by name. An empty directory yields 204 No Content.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	UserResponse	"users"
//	@Success		204	"empty directory"
//	@Router			/user [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.FindAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(users) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponses(users))
}

// HandleGet handles GET /user/id/{id}
//
//	@Summary		Get user
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int				true	"User id"
//	@Success		200	{object}	UserResponse	"the user"
//	@Failure		404	{object}	ErrorResponse	"error, message"
//	@Router			/user/id/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.UserService.Find(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleUpdate handles PUT /user/id/{id}
//
//	@Summary		Replace user
//	@Description	Replaces name, password, and roles. The password is always re-hashed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int				true	"User id"
//	@Param			request	body		UserRequest		true	"New user data"
//	@Success		200		{object}	UserResponse	"the updated user"
//	@Failure		400		{object}	ErrorResponse	"error, message"
//	@Failure		404		{object}	ErrorResponse	"error, message"
//	@Failure		409		{object}	ErrorResponse	"error, message"
//	@Router			/user/id/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, ok := decodeUserRequest(w, r)
	if !ok {
		return
	}

	u, err := h.UserService.Update(r.Context(), id, req.Name, req.Password, req.Roles)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleDelete handles DELETE /user/id/{id}
//
//	@Summary		Delete user
//	@Description	Removes a user. Deleting an unknown id still returns 204.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	int	true	"User id"
//	@Success		204	"deleted"
//	@Router			/user/id/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListByRole handles GET /user/role/{role}
//
//	@Summary		List users by role
//	@Description	Returns the users holding the role, ordered by name. No matches yields 204.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			role	path	string	true	"Role name, e.g. ADMIN"
//	@Success		200		{array}	UserResponse	"users"
//	@Success		204		"no users hold the role"
//	@Router			/user/role/{role} [get].
func (h *UsersHandler) HandleListByRole(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.FindAllByRole(r.Context(), r.PathValue("role"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(users) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponses(users))
}

func decodeUserRequest(w http.ResponseWriter, r *http.Request) (UserRequest, bool) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid JSON in request body",
		})
		return UserRequest{}, false
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return UserRequest{}, false
	}
	return req, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		// An unparseable id can never name a record.
		writeError(w, r, store.ErrNotFound)
		return 0, false
	}
	return id, true
}
