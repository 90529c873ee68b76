package domain

import "strings"

// Role names recognised by the service. Roles are stored on the user record
// as a comma-separated string rather than a join table.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// KnownRoles is the closed vocabulary of assignable roles.
var KnownRoles = []string{RoleUser, RoleAdmin}

// SplitRoles parses a comma-separated role string into individual role names.
// Blank entries are dropped, so "" and " , " both yield nil.
func SplitRoles(roles string) []string {
	var out []string
	for _, r := range strings.Split(roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// JoinRoles is the inverse of SplitRoles.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}

// ContainsRole reports whether the comma-separated role string contains the
// given role, compared case-insensitively.
func ContainsRole(roles, role string) bool {
	for _, r := range SplitRoles(roles) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// ValidRoles reports whether every entry in the comma-separated role string
// belongs to the known vocabulary. An empty or blank string is trivially
// valid: roleless users exist, they just cannot authenticate.
func ValidRoles(roles string) bool {
	for _, r := range SplitRoles(roles) {
		known := false
		for _, k := range KnownRoles {
			if strings.EqualFold(r, k) {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}
