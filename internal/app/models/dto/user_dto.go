package dto

import "time"

// UserResponse represents the public projection of a user record
type UserResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Department     string    `json:"department"`
	Contact        string    `json:"contact"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	FacultyID      *string   `json:"facultyId,omitempty"`
	StudentID      *string   `json:"studentId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateUserRequest represents an admin creating a faculty or student account.
// The role comes from the route, never from the payload.
type CreateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FacultyID  string `json:"facultyId"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
}

// UpdateUserRequest represents an admin patch over a faculty or student record.
// Merge semantics: absent/empty fields stay untouched, role is never patchable.
type UpdateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" binding:"omitempty,email"`
	Password   string `json:"password" binding:"omitempty,min=8"`
	FacultyID  string `json:"facultyId"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
}
