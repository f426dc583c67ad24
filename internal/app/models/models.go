package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleFaculty RoleType = "FACULTY"
	RoleStudent RoleType = "STUDENT"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}
