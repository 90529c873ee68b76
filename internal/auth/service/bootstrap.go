package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/defensedrill/auth/internal/auth/domain"
	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/pkg/slogx"
)

// BootstrapService seeds the first admin account so a fresh deployment is
// reachable. It only acts when the directory is completely empty and
// credentials were configured.
type BootstrapService struct {
	Store store.Store
	Users *UserService

	AdminName     string
	AdminPassword string
}

// SeedAdmin creates the configured admin user when the store is empty.
// Returns the created user, or a zero user when nothing was done.
func (s *BootstrapService) SeedAdmin(ctx context.Context) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if s.AdminName == "" || s.AdminPassword == "" {
		return domain.User{}, nil
	}

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if !empty {
		return domain.User{}, nil
	}

	u, err := s.Users.Create(ctx, s.AdminName, s.AdminPassword, domain.JoinRoles([]string{domain.RoleAdmin, domain.RoleUser}))
	if err != nil {
		// A concurrent replica may have seeded first.
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("bootstrap admin already present")
			return domain.User{}, nil
		}
		return domain.User{}, err
	}

	l.Info("bootstrap admin created", slog.String("name", u.Name), slog.Int64("id", u.ID))
	return u, nil
}
