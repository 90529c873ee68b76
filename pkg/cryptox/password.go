package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hash time for brute-force resistance. The default cost
// is fine for interactive logins; bump via tests only ever downwards.
const bcryptCost = bcrypt.DefaultCost

// ErrPasswordMismatch is returned when a password does not match its hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a bcrypt hash of the given password. The returned
// string embeds the salt and cost parameters.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("cryptox: empty password")
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(h), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
// Returns ErrPasswordMismatch when they do not match, so callers can
// distinguish a wrong password from a corrupt hash.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("cryptox: verify password: %w", err)
	}
	return nil
}
