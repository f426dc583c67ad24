package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
	"github.com/emre/campusvoice/internal/pkg/dberrors"
	"github.com/emre/campusvoice/internal/pkg/logger"
)

const userColumns = "id, name, email, password, role, department, contact, profile_picture, faculty_no, student_no, created_at, updated_at"

// UserRepository handles user database operations. Each operation is a single
// atomic document write; there is no multi-row transaction in this design.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.Department, &user.Contact, &user.ProfilePicture,
		&user.FacultyNo, &user.StudentNo, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Emails are stored lowercase so uniqueness is
// case-insensitive; a duplicate maps to apperrors.ErrEmailAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "password", "role", "department", "contact", "profile_picture", "faculty_no", "student_no").
		Values(user.Name, user.Email, user.Password, user.Role, user.Department, user.Contact, user.ProfilePicture, user.FacultyNo, user.StudentNo).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			// Raced with a concurrent create on the same email
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row by email")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// GetByIDAndRole retrieves a user only when both id and role match. Role
// partitioning lives here so an admin record is unreachable through the
// faculty/student management paths.
func (r *UserRepository) GetByIDAndRole(ctx context.Context, id int64, role models.RoleType) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id, "role": role}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by id and role query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Str("role", string(role)).Msg("Error scanning user row by id and role")
		return nil, fmt.Errorf("error getting user by id and role: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists, case-insensitively
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		strings.ToLower(strings.TrimSpace(email))).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// RoleExists checks whether any user with the given role exists
func (r *UserRepository) RoleExists(ctx context.Context, role models.RoleType) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`,
		role).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking role existence: %w", err)
	}

	return exists, nil
}

// ListByRole retrieves all users of one role
func (r *UserRepository) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"role": role}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("role", string(role)).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// Update persists the mutable fields of a user record. The role column is
// deliberately absent from the SET list: role is immutable after creation.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	sql, args, err := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"name":            user.Name,
			"email":           user.Email,
			"password":        user.Password,
			"department":      user.Department,
			"contact":         user.Contact,
			"profile_picture": user.ProfilePicture,
			"faculty_no":      user.FacultyNo,
			"student_no":      user.StudentNo,
			"updated_at":      squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteByRole deletes a user only when both id and role match. Deleting an
// admin through this path reports not-found because of the role filter.
func (r *UserRepository) DeleteByRole(ctx context.Context, id int64, role models.RoleType) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id, "role": role}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Str("role", string(role)).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
