package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/app/services"
	"github.com/emre/campusvoice/internal/middleware"
)

// FacultyController handles the faculty dashboard surface
type FacultyController struct {
	userService     *services.UserService
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(userService *services.UserService, feedbackService *services.FeedbackService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		userService:     userService,
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// ListOwnFeedback returns the feedback about the authenticated faculty member
// together with the count and average rating.
// @Summary List own feedback
// @Description Retrieves all feedback submitted about the caller plus read-time aggregates
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FacultyFeedbackResponse} "Feedback with aggregates"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /faculty/feedback [get]
func (c *FacultyController) ListOwnFeedback(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.feedbackService.ListForFaculty(ctx.Request.Context(), user.ID)
	if err != nil {
		c.logger.Error().Err(err).Int64("facultyID", user.ID).Msg("Failed to list faculty feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetProfile returns the authenticated faculty member's own record
// @Summary Get faculty profile
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Faculty profile"
// @Router /faculty/profile [get]
func (c *FacultyController) GetProfile(ctx *gin.Context) {
	GetOwnProfile(ctx)
}

// UpdateProfile patches the authenticated faculty member's own record
// @Summary Update faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Faculty profile updated"
// @Router /faculty/profile [put]
func (c *FacultyController) UpdateProfile(ctx *gin.Context) {
	updateOwnProfile(ctx, c.userService, c.logger)
}
