package types

import "fmt"

// Role represents the operator's role in a case
type Role string

const (
	RolePrimarySurgeon Role = "Primary Surgeon"
	RoleAssistant      Role = "Assistant"
	RoleObserver       Role = "Observer"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RolePrimarySurgeon,
		RoleAssistant,
		RoleObserver,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RolePrimarySurgeon,
		RoleAssistant,
		RoleObserver:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
