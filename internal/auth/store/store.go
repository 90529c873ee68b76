package store

import (
	"context"
	"errors"

	"github.com/defensedrill/auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict is returned when an optimistic update loses the race, i.e.
	// the row's version no longer matches the version the caller read.
	ErrConflict = errors.New("store: version conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by its numeric id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByName is used during credential authentication. Names are
	// unique, so this is a point lookup.
	GetUserByName(ctx context.Context, name string) (domain.User, error)

	// CreateUser inserts a new user and returns the assigned id.
	// Returns ErrAlreadyExists when the name is taken.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateUser replaces the mutable fields of the row matching u.ID AND
	// u.Version, bumping the version. Returns ErrConflict when the version
	// has moved on, ErrNotFound when the id does not exist.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes a user. Deleting an unknown id is a no-op.
	DeleteUser(ctx context.Context, id int64) error

	// ListUsers returns every user ordered by name.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersByRole returns users whose role string contains the given
	// role, ordered by name.
	ListUsersByRole(ctx context.Context, role string) ([]domain.User, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}
