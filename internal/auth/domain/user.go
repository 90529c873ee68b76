package domain

import "time"

type User struct {
	ID           int64
	Name         string
	PasswordHash string // bcrypt encoded
	Roles        string // comma-separated role names, e.g. "ADMIN,USER"
	Version      int64  // optimistic concurrency counter
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user's role list contains the given role.
// Matching is case-insensitive.
func (u User) HasRole(role string) bool {
	return ContainsRole(u.Roles, role)
}
