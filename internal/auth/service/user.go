package service

import (
	"context"
	"errors"
	"strings"

	"github.com/defensedrill/auth/internal/auth/domain"
	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/pkg/cryptox"
)

var (
	// ErrInvalidRoles is returned when a role list contains an entry outside
	// the known vocabulary.
	ErrInvalidRoles = errors.New("invalid_roles")

	// ErrMissingID is returned when an update names no record to replace.
	ErrMissingID = errors.New("missing_id")
)

// UserService manages the user directory. Passwords arrive in plaintext from
// the transport layer and are hashed here; stored hashes never leave the
// store except embedded in the domain.User record.
type UserService struct {
	Store store.Store
}

// Create inserts a new user. The role list must fit the known vocabulary and
// the name must be free, otherwise store.ErrAlreadyExists bubbles up.
func (s *UserService) Create(ctx context.Context, name, password, roles string) (domain.User, error) {
	roles = normalizeRoles(roles)
	if !domain.ValidRoles(roles) {
		return domain.User{}, ErrInvalidRoles
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		Name:         name,
		PasswordHash: hash,
		Roles:        roles,
	}

	id, err := s.Store.Users().CreateUser(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, id)
}

// Update replaces a user's name, password, and roles. The password is always
// re-hashed. Concurrent updates lose with store.ErrConflict.
func (s *UserService) Update(ctx context.Context, id int64, name, password, roles string) (domain.User, error) {
	if id <= 0 {
		return domain.User{}, ErrMissingID
	}

	roles = normalizeRoles(roles)
	if !domain.ValidRoles(roles) {
		return domain.User{}, ErrInvalidRoles
	}

	current, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	current.Name = name
	current.PasswordHash = hash
	current.Roles = roles

	if err := s.Store.Users().UpdateUser(ctx, current); err != nil {
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, id)
}

// Find fetches a user by id.
func (s *UserService) Find(ctx context.Context, id int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// FindByName fetches a user by unique name.
func (s *UserService) FindByName(ctx context.Context, name string) (domain.User, error) {
	return s.Store.Users().GetUserByName(ctx, name)
}

// FindAll returns every user ordered by name.
func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// FindAllByRole returns the users holding the given role, ordered by name.
func (s *UserService) FindAllByRole(ctx context.Context, role string) ([]domain.User, error) {
	return s.Store.Users().ListUsersByRole(ctx, role)
}

// Delete removes a user. Unknown ids are a no-op.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.Store.Users().DeleteUser(ctx, id)
}

// normalizeRoles trims whitespace around each entry and uppercases it, so
// "admin, user" is stored as "ADMIN,USER".
func normalizeRoles(roles string) string {
	parts := domain.SplitRoles(roles)
	for i := range parts {
		parts[i] = strings.ToUpper(parts[i])
	}
	return domain.JoinRoles(parts)
}
