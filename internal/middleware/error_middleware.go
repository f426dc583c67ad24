package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to the standard error responses.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")))
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Faculty not found")))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "User already exists")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
