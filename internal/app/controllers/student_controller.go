package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/services"
)

// StudentController handles the student self-service surface
type StudentController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(userService *services.UserService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile returns the authenticated student's own record
// @Summary Get student profile
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Student profile"
// @Router /student/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	GetOwnProfile(ctx)
}

// UpdateProfile patches the authenticated student's own record
// @Summary Update student profile
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Student profile updated"
// @Router /student/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	updateOwnProfile(ctx, c.userService, c.logger)
}
