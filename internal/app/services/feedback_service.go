package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
)

// FeedbackService implements the append-only feedback ledger with read-time
// aggregation.
type FeedbackService struct {
	feedback FeedbackStore
	users    UserStore
	logger   zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedback FeedbackStore, users UserStore, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		users:    users,
		logger:   logger,
	}
}

// Submit creates an immutable feedback record authored by the given student.
// The subject must resolve to a FACULTY user at creation time. Multiple
// submissions for the same faculty member by the same student are allowed.
func (s *FeedbackService) Submit(ctx context.Context, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating))
	}

	if _, err := s.users.GetByIDAndRole(ctx, req.FacultyID, models.RoleFaculty); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, err
	}

	feedback := &models.Feedback{
		StudentID: studentID,
		FacultyID: req.FacultyID,
		Rating:    req.Rating,
		Comments:  req.Comments,
	}

	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Int64("facultyID", req.FacultyID).
		Int("rating", req.Rating).
		Msg("Feedback submitted")

	return feedback, nil
}

// ListForFaculty retrieves the feedback about one faculty member together with
// the read-time aggregates for the faculty dashboard.
func (s *FeedbackService) ListForFaculty(ctx context.Context, facultyID int64) (*dto.FacultyFeedbackResponse, error) {
	records, err := s.feedback.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	return &dto.FacultyFeedbackResponse{
		Feedback: mapFeedbackResponses(records),
		Summary:  models.Summarize(records),
	}, nil
}

// ListAll retrieves every feedback record with both identities resolved.
func (s *FeedbackService) ListAll(ctx context.Context) ([]dto.FeedbackResponse, error) {
	records, err := s.feedback.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapFeedbackResponses(records), nil
}

// FacultyDirectory is the student-facing projection of faculty identity fields
// used to populate the submission form.
func (s *FeedbackService) FacultyDirectory(ctx context.Context) ([]dto.FacultyDirectoryEntry, error) {
	faculty, err := s.users.ListByRole(ctx, models.RoleFaculty)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.FacultyDirectoryEntry, 0, len(faculty))
	for _, f := range faculty {
		entries = append(entries, dto.FacultyDirectoryEntry{
			ID:         f.ID,
			Name:       f.Name,
			Email:      f.Email,
			Department: f.Department,
		})
	}

	return entries, nil
}

func mapFeedbackResponses(records []*models.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, 0, len(records))
	for _, fb := range records {
		resp := dto.FeedbackResponse{
			ID:        fb.ID,
			Rating:    fb.Rating,
			Comments:  fb.Comments,
			CreatedAt: fb.CreatedAt,
		}
		if fb.Student != nil {
			resp.Student = &dto.UserRef{
				ID:    fb.Student.ID,
				Name:  fb.Student.Name,
				Email: fb.Student.Email,
			}
		}
		if fb.Faculty != nil {
			resp.Faculty = &dto.UserRef{
				ID:         fb.Faculty.ID,
				Name:       fb.Faculty.Name,
				Email:      fb.Faculty.Email,
				Department: fb.Faculty.Department,
			}
		}
		responses = append(responses, resp)
	}
	return responses
}
