package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/pkg/logger"
)

// FeedbackRepository handles feedback database operations. The table is
// append-only from the application's perspective, so there is no update or
// delete here.
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new feedback record
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	sql, args, err := r.sb.Insert("feedback").
		Columns("student_id", "faculty_id", "rating", "comments").
		Values(feedback.StudentID, feedback.FacultyID, feedback.Rating, feedback.Comments).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create feedback query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", feedback.FacultyID).Msg("Error executing create feedback query")
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all feedback for one faculty member with the author
// identity resolved (name and email only).
func (r *FeedbackRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Feedback, error) {
	sql, args, err := r.sb.Select(
		"f.id", "f.student_id", "f.faculty_id", "f.rating", "f.comments", "f.created_at",
		"s.name", "s.email").
		From("feedback f").
		Join("users s ON s.id = f.student_id").
		Where(squirrel.Eq{"f.faculty_id": facultyID}).
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing list feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	records := []*models.Feedback{}
	for rows.Next() {
		fb := &models.Feedback{Student: &models.User{}}
		if err := rows.Scan(
			&fb.ID, &fb.StudentID, &fb.FacultyID, &fb.Rating, &fb.Comments, &fb.CreatedAt,
			&fb.Student.Name, &fb.Student.Email); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		fb.Student.ID = fb.StudentID
		records = append(records, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return records, nil
}

// ListAll retrieves every feedback record with both author and subject
// identity resolved for the admin view.
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	sql, args, err := r.sb.Select(
		"f.id", "f.student_id", "f.faculty_id", "f.rating", "f.comments", "f.created_at",
		"s.name", "s.email",
		"fa.name", "fa.email", "fa.department").
		From("feedback f").
		Join("users s ON s.id = f.student_id").
		Join("users fa ON fa.id = f.faculty_id").
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list all feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	records := []*models.Feedback{}
	for rows.Next() {
		fb := &models.Feedback{Student: &models.User{}, Faculty: &models.User{}}
		if err := rows.Scan(
			&fb.ID, &fb.StudentID, &fb.FacultyID, &fb.Rating, &fb.Comments, &fb.CreatedAt,
			&fb.Student.Name, &fb.Student.Email,
			&fb.Faculty.Name, &fb.Faculty.Email, &fb.Faculty.Department); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		fb.Student.ID = fb.StudentID
		fb.Faculty.ID = fb.FacultyID
		records = append(records, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return records, nil
}
