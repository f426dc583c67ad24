package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a student self-registration request.
// The role is always forced to STUDENT on this path.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
}

// AuthResponse represents a successful authentication: the public identity
// plus a fresh session token. The password hash is never part of any response.
type AuthResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
	Token          string `json:"token"`
}

// UpdateProfileRequest represents a self-service profile patch. Every absent
// or empty field is left unchanged; an empty password means "no change",
// never "set password to empty".
type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Department     string `json:"department"`
	Contact        string `json:"contact"`
	ProfilePicture string `json:"profilePicture"`
	Password       string `json:"password" binding:"omitempty,min=8"`
}
