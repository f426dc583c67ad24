package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/pkg/filestorage"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadController handles profile picture uploads
type UploadController struct {
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage, logger zerolog.Logger) *UploadController {
	return &UploadController{
		storage: storage,
		logger:  logger,
	}
}

// Upload stores an uploaded image and returns the URL it is served under
// @Summary Upload a profile picture
// @Description Stores an uploaded image file and returns the public URL
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} dto.APIResponse "File uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing or unsupported file"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded")
		errorDetail = errorDetail.WithField("image")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unsupported file type")
		errorDetail = errorDetail.WithDetails("Only jpg, jpeg, png, gif and webp images are accepted")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to store uploaded file")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to store uploaded file")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"url": url}))
}
