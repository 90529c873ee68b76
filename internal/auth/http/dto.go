package http

import (
	"time"

	"github.com/defensedrill/auth/internal/auth/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UserRequest is the JSON body for creating or replacing a user.
type UserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Roles    string `json:"roles"`
}

// Field limits mirror the directory's storage constraints.
func (r UserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(6, 31)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 31)),
		validation.Field(&r.Roles, validation.Length(0, 511), validation.By(knownRoles)),
	)
}

func knownRoles(value any) error {
	s, _ := value.(string)
	if !domain.ValidRoles(s) {
		return validation.NewError("validation_roles", "must only contain known roles")
	}
	return nil
}

// CredentialsRequest is the JSON body for token issuance. The field is
// "username" on the wire, matching the form login.
type CredentialsRequest struct {
	Name     string `json:"username"`
	Password string `json:"password"`
}

func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse carries a freshly minted session token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// UserResponse is the public view of a user record. Password hashes never
// leave the service.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Roles     string    `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
