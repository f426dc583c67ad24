// Package filestorage handles storing uploaded files on the local filesystem.
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/emre/campusvoice/internal/pkg/logger"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile saves a file and returns the path or URL it is accessible under
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously stored file
	DeleteFile(filePath string) error
}

// LocalStorage stores files under a directory on the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // prepended to returned paths when set
}

// NewLocalStorage creates a new LocalStorage instance. The base path is
// created if it does not exist.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile stores an uploaded file under a generated unique name to prevent
// collisions, and returns the path it is accessible under.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := filepath.Join("uploads", uniqueFilename)
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/") + "/" + uniqueFilename
	}

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", uniqueFilename).
		Msg("File saved successfully")
	return accessiblePath, nil
}

// DeleteFile removes a stored file. Deleting a file that no longer exists is
// not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	filename := filepath.Base(filePath)
	if filename == "" || filename == "." || filename == "/" || filename == "uploads" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
