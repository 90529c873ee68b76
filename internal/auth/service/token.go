package service

import (
	"errors"
	"time"

	"github.com/defensedrill/auth/internal/auth/domain"
	"github.com/defensedrill/auth/pkg/jwtx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrNoTokenRoles is returned when a user has no role granting any token
	// validity, so no token can be minted for them.
	ErrNoTokenRoles = errors.New("no_token_roles")
)

// TokenService mints and inspects session tokens. Token lifetime depends on
// the most restrictive role the subject holds: admins get short-lived tokens,
// plain users long-lived ones, and roleless users none at all.
//
// There is no revocation list. A minted token stays valid until its expiry
// even if the user record changes underneath it; the request filter narrows
// that window by re-reading the directory on every request.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	AdminTTL time.Duration // e.g. 30m
	UserTTL  time.Duration // e.g. 744h
}

// TTLForRoles returns the token lifetime for a comma-separated role string.
// The most restrictive matching role wins, so "USER,ADMIN" gets the admin
// lifetime. Returns 0 when no role grants any validity.
func (s *TokenService) TTLForRoles(roles string) time.Duration {
	switch {
	case domain.ContainsRole(roles, domain.RoleAdmin):
		return s.AdminTTL
	case domain.ContainsRole(roles, domain.RoleUser):
		return s.UserTTL
	default:
		return 0
	}
}

// Mint signs a session token for the user and returns it with its lifetime.
func (s *TokenService) Mint(u domain.User) (string, time.Duration, error) {
	ttl := s.TTLForRoles(u.Roles)
	if ttl <= 0 {
		return "", 0, ErrNoTokenRoles
	}

	claims := jwtx.NewSessionClaims(u.Name, u.Roles, s.Issuer, ttl, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// Validate reports whether the token carries a good signature, the expected
// issuer, and an unexpired lifetime. Any failure, including a malformed or
// empty token, is simply "invalid".
func (s *TokenService) Validate(token string) bool {
	_, err := s.Verifier.Verify(token)
	return err == nil
}

// ExtractSubject returns the token's subject, or empty string when the token
// does not validate. Callers never see why a bad token failed.
func (s *TokenService) ExtractSubject(token string) string {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// ExtractRoles returns the token's comma-separated roles claim, or empty
// string when the token does not validate.
func (s *TokenService) ExtractRoles(token string) string {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return ""
	}
	return claims.Roles
}
