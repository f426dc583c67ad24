package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/app/services"
	"github.com/emre/campusvoice/internal/middleware"
)

// GetOwnProfile returns the caller's own record. The authentication gate has
// already re-resolved the user, so the context copy is current.
func GetOwnProfile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mapUserToResponse(user)))
}

// updateOwnProfile applies a self-service merge patch scoped to the caller's
// own id.
func updateOwnProfile(ctx *gin.Context, userService *services.UserService, logger zerolog.Logger) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := userService.UpdateProfile(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mapUserToResponse(updated)))
}
