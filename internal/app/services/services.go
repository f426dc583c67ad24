package services

import (
	"context"

	"github.com/emre/campusvoice/internal/app/models"
)

// UserStore is the slice of the user repository the services consume.
// Declared here so tests can substitute an in-memory implementation.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDAndRole(ctx context.Context, id int64, role models.RoleType) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	DeleteByRole(ctx context.Context, id int64, role models.RoleType) error
}

// FileRemover removes a previously stored upload. Profile updates use it to
// release the old picture once a new one replaces it.
type FileRemover interface {
	DeleteFile(filePath string) error
}

// FeedbackStore is the slice of the feedback repository the services consume.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Feedback, error)
	ListAll(ctx context.Context) ([]*models.Feedback, error)
}
