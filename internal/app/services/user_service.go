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

// UserService implements the role-partitioned user directory. Faculty and
// student management are the same state machine differing only in the role
// filter and the role-specific identifier field.
type UserService struct {
	users   UserStore
	storage FileRemover
	logger  zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users UserStore, storage FileRemover, logger zerolog.Logger) *UserService {
	return &UserService{
		users:   users,
		storage: storage,
		logger:  logger,
	}
}

// notFoundForRole translates the generic user-not-found into the
// entity-specific error for the managed role.
func notFoundForRole(role models.RoleType) error {
	switch role {
	case models.RoleFaculty:
		return apperrors.ErrFacultyNotFound
	case models.RoleStudent:
		return apperrors.ErrStudentNotFound
	}
	return apperrors.ErrUserNotFound
}

// ListByRole retrieves all users of the given role
func (s *UserService) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	return s.users.ListByRole(ctx, role)
}

// Create creates a faculty or student account on behalf of an admin. The role
// comes from the management route, never from the payload.
func (s *UserService) Create(ctx context.Context, role models.RoleType, req *dto.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	switch role {
	case models.RoleFaculty:
		user = models.NewFacultyUser(req.Name, req.Email, hashedPassword, req.FacultyID, req.Department, req.Contact)
	case models.RoleStudent:
		user = models.NewStudentUser(req.Name, req.Email, hashedPassword, req.StudentID, req.Department, req.Contact)
	default:
		return nil, apperrors.NewValidationError("unsupported role for account creation")
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User account created")
	return user, nil
}

// Update applies an admin patch to a user of the given role. Merge semantics:
// fields absent from the patch are untouched, an empty password leaves the
// stored hash alone, and the role itself is never modified.
func (s *UserService) Update(ctx context.Context, id int64, role models.RoleType, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByIDAndRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, notFoundForRole(role)
		}
		return nil, err
	}

	patch := &dto.UpdateProfileRequest{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Contact:    req.Contact,
		Password:   req.Password,
	}
	if err := ApplyProfilePatch(user, patch); err != nil {
		return nil, err
	}

	switch role {
	case models.RoleFaculty:
		if req.FacultyID != "" {
			facultyNo := req.FacultyID
			user.FacultyNo = &facultyNo
		}
	case models.RoleStudent:
		if req.StudentID != "" {
			studentNo := req.StudentID
			user.StudentNo = &studentNo
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user of the given role. Admin records never match the role
// filter, so they are not deletable through this path.
func (s *UserService) Delete(ctx context.Context, id int64, role models.RoleType) error {
	if err := s.users.DeleteByRole(ctx, id, role); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return notFoundForRole(role)
		}
		return err
	}

	s.logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User account deleted")
	return nil
}

// GetProfile retrieves the authenticated user's own record
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a self-service patch scoped to the caller's own id.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
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
	return user, nil
}
