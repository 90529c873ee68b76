package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/defensedrill/auth/internal/auth/domain"
	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/pkg/cryptox"
	"github.com/defensedrill/auth/pkg/slogx"
)

// AuthService turns credentials into session tokens.
//
// Every failure mode surfaces as ErrInvalidCredentials: unknown user, wrong
// password, missing role. Callers (and therefore attackers) cannot tell them
// apart.
type AuthService struct {
	Store store.Store
	Token *TokenService
}

// Authenticate verifies name/password and mints a session token. Users whose
// role list grants no token validity cannot authenticate at all.
func (s *AuthService) Authenticate(ctx context.Context, name, password string) (string, time.Duration, error) {
	l := slogx.FromContext(ctx)

	user, err := s.lookupAndVerify(ctx, name, password)
	if err != nil {
		return "", 0, err
	}

	token, ttl, err := s.Token.Mint(user)
	if errors.Is(err, ErrNoTokenRoles) {
		l.Info("authentication refused for roleless user", slog.String("name", name))
		return "", 0, ErrInvalidCredentials
	}
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// AuthenticateForRole behaves like Authenticate but additionally requires the
// user to hold the given role (compared case-insensitively). A missing role
// is reported identically to a bad password.
//
// The minted token is narrowed to exactly the requested role: an admin who
// asks for USER scope gets a token claiming only USER, with the long user
// lifetime instead of the short admin one.
func (s *AuthService) AuthenticateForRole(ctx context.Context, name, password, role string) (string, time.Duration, error) {
	l := slogx.FromContext(ctx)

	user, err := s.lookupAndVerify(ctx, name, password)
	if err != nil {
		return "", 0, err
	}

	if !user.HasRole(role) {
		l.Info("authentication refused, role not held",
			slog.String("name", name),
			slog.String("role", role),
		)
		return "", 0, ErrInvalidCredentials
	}

	user.Roles = strings.ToUpper(role)
	token, ttl, err := s.Token.Mint(user)
	if errors.Is(err, ErrNoTokenRoles) {
		return "", 0, ErrInvalidCredentials
	}
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// AuthenticateToken resolves a raw session token to a live principal: the
// token must verify and its subject must still exist in the directory. The
// principal's roles come from the directory record, not the token, so role
// changes take effect on the next request.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string) (string, []string, error) {
	subject := s.Token.ExtractSubject(token)
	if subject == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByName(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	return user.Name, domain.SplitRoles(user.Roles), nil
}

func (s *AuthService) lookupAndVerify(ctx context.Context, name, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("authentication failed, unknown user", slog.String("name", name))
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("authentication failed, password mismatch", slog.String("name", name))
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}
