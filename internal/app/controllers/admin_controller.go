package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/app/services"
	"github.com/emre/campusvoice/internal/middleware"
)

// AdminController handles the admin management surface: faculty and student
// account administration plus the full feedback listing. Faculty and student
// management share the same handlers parameterized by role.
type AdminController struct {
	userService     *services.UserService
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(userService *services.UserService, feedbackService *services.FeedbackService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		userService:     userService,
		feedbackService: feedbackService,
		logger:          logger,
	}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// listUsers retrieves all users of the managed role
func (c *AdminController) listUsers(ctx *gin.Context, role models.RoleType) {
	users, err := c.userService.ListByRole(ctx.Request.Context(), role)
	if err != nil {
		c.logger.Error().Err(err).Str("role", string(role)).Msg("Failed to list users")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mapUsersToResponses(users)))
}

// createUser creates an account of the managed role
func (c *AdminController) createUser(ctx *gin.Context, role models.RoleType) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create user payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.Create(ctx.Request.Context(), role, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("role", string(role)).Msg("Failed to create user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(mapUserToResponse(user)))
}

// updateUser patches an account of the managed role
func (c *AdminController) updateUser(ctx *gin.Context, role models.RoleType) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update user payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.Update(ctx.Request.Context(), id, role, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", id).Str("role", string(role)).Msg("Failed to update user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mapUserToResponse(user)))
}

// deleteUser removes an account of the managed role
func (c *AdminController) deleteUser(ctx *gin.Context, role models.RoleType) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), id, role); err != nil {
		c.logger.Warn().Err(err).Int64("userID", id).Str("role", string(role)).Msg("Failed to delete user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted successfully"))
}

// ListFaculty handles listing all faculty accounts
// @Summary List faculty
// @Description Retrieves all faculty accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Faculty accounts"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /admin/faculty [get]
func (c *AdminController) ListFaculty(ctx *gin.Context) {
	c.listUsers(ctx, models.RoleFaculty)
}

// CreateFaculty handles creating a faculty account
// @Summary Create faculty account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Faculty account information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Faculty account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/faculty [post]
func (c *AdminController) CreateFaculty(ctx *gin.Context) {
	c.createUser(ctx, models.RoleFaculty)
}

// UpdateFaculty handles patching a faculty account
// @Summary Update faculty account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty user id"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Faculty account updated"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /admin/faculty/{id} [put]
func (c *AdminController) UpdateFaculty(ctx *gin.Context) {
	c.updateUser(ctx, models.RoleFaculty)
}

// DeleteFaculty handles deleting a faculty account
// @Summary Delete faculty account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty user id"
// @Success 200 {object} dto.APIResponse "Faculty account deleted"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /admin/faculty/{id} [delete]
func (c *AdminController) DeleteFaculty(ctx *gin.Context) {
	c.deleteUser(ctx, models.RoleFaculty)
}

// ListStudents handles listing all student accounts
// @Summary List students
// @Description Retrieves all student accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Student accounts"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	c.listUsers(ctx, models.RoleStudent)
}

// CreateStudent handles creating a student account
// @Summary Create student account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Student account information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Student account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	c.createUser(ctx, models.RoleStudent)
}

// UpdateStudent handles patching a student account
// @Summary Update student account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student user id"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Student account updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [put]
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	c.updateUser(ctx, models.RoleStudent)
}

// DeleteStudent handles deleting a student account
// @Summary Delete student account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student user id"
// @Success 200 {object} dto.APIResponse "Student account deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [delete]
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	c.deleteUser(ctx, models.RoleStudent)
}

// ListAllFeedback handles the admin-wide feedback listing
// @Summary List all feedback
// @Description Retrieves every feedback record with student and faculty identities resolved
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse} "All feedback records"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /admin/feedback [get]
func (c *AdminController) ListAllFeedback(ctx *gin.Context) {
	records, err := c.feedbackService.ListAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// GetProfile returns the authenticated admin's own record
// @Summary Get admin profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Admin profile"
// @Router /admin/profile [get]
func (c *AdminController) GetProfile(ctx *gin.Context) {
	GetOwnProfile(ctx)
}

// UpdateProfile patches the authenticated admin's own record
// @Summary Update admin profile
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Admin profile updated"
// @Router /admin/profile [put]
func (c *AdminController) UpdateProfile(ctx *gin.Context) {
	updateOwnProfile(ctx, c.userService, c.logger)
}
