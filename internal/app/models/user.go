package models

import (
	"time"
)

// User defines the user model based on the 'users' table. The role tag selects
// which of the role-specific identifiers may be set: FacultyNo for FACULTY,
// StudentNo for STUDENT, neither for ADMIN. Use the constructors below so an
// illegal combination never exists.
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name           string    `json:"name" db:"name" example:"Jane Doe"`                       // Full name
	Email          string    `json:"email" db:"email" example:"jane@school.edu"`              // Email address, stored lowercase
	Password       string    `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	Role           RoleType  `json:"role" db:"role" example:"STUDENT"`                        // Role tag, immutable after creation
	Department     string    `json:"department" db:"department" example:"Computer Science"`   // Department name
	Contact        string    `json:"contact" db:"contact" example:"+90 555 000 0000"`         // Contact number
	ProfilePicture *string   `json:"profilePicture,omitempty" db:"profile_picture"`           // Opaque URL from the upload collaborator (nullable)
	FacultyNo      *string   `json:"facultyId,omitempty" db:"faculty_no"`                     // Faculty identifier, FACULTY role only
	StudentNo      *string   `json:"studentId,omitempty" db:"student_no"`                     // Student identifier, STUDENT role only
	CreatedAt      time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}

// NewAdminUser creates an admin identity record.
func NewAdminUser(name, email, passwordHash, department, contact string) *User {
	return &User{
		Name:       name,
		Email:      email,
		Password:   passwordHash,
		Role:       RoleAdmin,
		Department: department,
		Contact:    contact,
	}
}

// NewFacultyUser creates a faculty identity record carrying a faculty number.
func NewFacultyUser(name, email, passwordHash, facultyNo, department, contact string) *User {
	u := &User{
		Name:       name,
		Email:      email,
		Password:   passwordHash,
		Role:       RoleFaculty,
		Department: department,
		Contact:    contact,
	}
	if facultyNo != "" {
		u.FacultyNo = &facultyNo
	}
	return u
}

// NewStudentUser creates a student identity record carrying a student number.
func NewStudentUser(name, email, passwordHash, studentNo, department, contact string) *User {
	u := &User{
		Name:       name,
		Email:      email,
		Password:   passwordHash,
		Role:       RoleStudent,
		Department: department,
		Contact:    contact,
	}
	if studentNo != "" {
		u.StudentNo = &studentNo
	}
	return u
}
