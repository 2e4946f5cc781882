package utils

// Role is the closed set of privilege levels recognized at the service
// boundary. Token claims carry the string form; convert once on entry.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// ParseRole normalizes a claim value into the closed enumeration. Anything
// unrecognized degrades to a regular user rather than erroring: an unknown
// role must never grant privilege.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
