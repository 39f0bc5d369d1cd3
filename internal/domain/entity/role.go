package entity

import "slices"

// Role is a claim carried in the access token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var knownRoles = []Role{RoleUser, RoleAdmin}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return slices.Contains(knownRoles, r) }

// Roles is the set of roles granted to one token holder.
type Roles []Role

func (rs Roles) Contains(role Role) bool { return slices.Contains(rs, role) }

// ToStrings renders roles for the JWT claim.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses a JWT claim. Unknown roles are dropped.
func RolesFromStrings(ss []string) Roles {
	var out Roles
	for _, s := range ss {
		if r := Role(s); r.IsValid() {
			out = append(out, r)
		}
	}

	return out
}
