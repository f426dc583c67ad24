package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/app/services"
	"github.com/emre/campusvoice/internal/middleware"
)

// FeedbackController handles feedback submission by students
type FeedbackController struct {
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Submit handles a student submitting feedback for a faculty member
// @Summary Submit feedback
// @Description Creates an immutable feedback record. The target must be an existing faculty member and the rating must be between 1 and 5.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitFeedbackRequest true "Feedback details"
// @Success 201 {object} dto.APIResponse "Feedback submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or rating out of range"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid feedback payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	feedback, err := c.feedbackService.Submit(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", user.ID).Msg("Feedback submission failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{
		"id":        feedback.ID,
		"rating":    feedback.Rating,
		"comments":  feedback.Comments,
		"createdAt": feedback.CreatedAt,
	}))
}

// ListFacultyDirectory returns the faculty identities students pick from when
// submitting feedback
// @Summary List faculty directory
// @Description Retrieves the faculty members available as feedback subjects
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyDirectoryEntry} "Faculty directory"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /feedback/faculty [get]
func (c *FeedbackController) ListFacultyDirectory(ctx *gin.Context) {
	entries, err := c.feedbackService.FacultyDirectory(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list faculty directory")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}
