package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
	"github.com/emre/campusvoice/internal/pkg/auth"
)

// AuthService handles credential verification, student self-registration and
// self-service profile updates.
type AuthService struct {
	users      UserStore
	jwtService *auth.JWTService
	storage    FileRemover
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *auth.JWTService, storage FileRemover, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		storage:    storage,
		logger:     logger,
	}
}

// Login authenticates a user by email and password. Unknown email and wrong
// password produce the same error so the caller learns nothing about which
// part failed. A store failure is not an authentication verdict and surfaces
// as a server error instead.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// RegisterStudent registers a new student account. The role is forced to
// STUDENT regardless of what the caller sends.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.NewStudentUser(req.Name, req.Email, hashedPassword, req.StudentID, req.Department, req.Contact)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("Student registered")
	return s.authResponse(user)
}

// UpdateOwnProfile applies a self-service profile patch for the authenticated
// user and returns the updated identity with a refreshed token. The role is
// never part of the patch.
func (s *AuthService) UpdateOwnProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldPicture := user.ProfilePicture
	if err := ApplyProfilePatch(user, req); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	removeReplacedPicture(s.storage, s.logger, oldPicture, req.ProfilePicture)
	return s.authResponse(user)
}

// authResponse builds the public identity plus a fresh session token.
func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	resp := &dto.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		Token: token,
	}
	if user.ProfilePicture != nil {
		resp.ProfilePicture = *user.ProfilePicture
	}

	return resp, nil
}

// ApplyProfilePatch merges a profile patch into a user record. Absent or empty
// fields are left unchanged; an empty password means "no change". A supplied
// password is rehashed, never stored as given.
func ApplyProfilePatch(user *models.User, req *dto.UpdateProfileRequest) error {
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Contact != "" {
		user.Contact = req.Contact
	}
	if req.ProfilePicture != "" {
		picture := req.ProfilePicture
		user.ProfilePicture = &picture
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
	}
	return nil
}

// removeReplacedPicture deletes the previously stored profile picture after a
// patch supplied a different one. The update itself has already succeeded, so
// a removal failure is only logged.
func removeReplacedPicture(storage FileRemover, logger zerolog.Logger, old *string, updated string) {
	if storage == nil || updated == "" || old == nil || *old == updated {
		return
	}
	if err := storage.DeleteFile(*old); err != nil {
		logger.Warn().Err(err).Str("path", *old).Msg("Failed to remove replaced profile picture")
	}
}
