package controllers

import (
	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
)

// mapUserToResponse builds the public projection of a user record. The
// password hash never crosses this boundary.
func mapUserToResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Department: user.Department,
		Contact:    user.Contact,
		FacultyID:  user.FacultyNo,
		StudentID:  user.StudentNo,
		CreatedAt:  user.CreatedAt,
	}
	if user.ProfilePicture != nil {
		resp.ProfilePicture = *user.ProfilePicture
	}
	return resp
}

func mapUsersToResponses(users []*models.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, mapUserToResponse(user))
	}
	return responses
}
