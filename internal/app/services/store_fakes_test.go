package services

import (
	"context"
	"strings"
	"time"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
)

// fakeUserStore is an in-memory UserStore mirroring the repository's
// semantics: lowercase emails, unique emails, role-filtered lookups and
// deletes, and a role column that updates never touch.
type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserStore) add(user *models.User) *models.User {
	u := *user
	u.ID = f.nextID
	u.Email = strings.ToLower(u.Email)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = &u
	f.nextID++
	return &u
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	email := strings.ToLower(user.Email)
	for _, existing := range f.users {
		if existing.Email == email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	created := f.add(user)
	*user = *created
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(email)
	for _, user := range f.users {
		if user.Email == email {
			u := *user
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByIDAndRole(ctx context.Context, id int64, role models.RoleType) (*models.User, error) {
	user, ok := f.users[id]
	if !ok || user.Role != role {
		return nil, apperrors.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	var result []*models.User
	for _, user := range f.users {
		if user.Role == role {
			u := *user
			result = append(result, &u)
		}
	}
	return result, nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *models.User) error {
	existing, ok := f.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	email := strings.ToLower(user.Email)
	for _, other := range f.users {
		if other.ID != user.ID && other.Email == email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	updated := *user
	updated.Email = email
	updated.Role = existing.Role // role is never updated
	updated.UpdatedAt = time.Now()
	f.users[user.ID] = &updated
	return nil
}

func (f *fakeUserStore) DeleteByRole(ctx context.Context, id int64, role models.RoleType) error {
	user, ok := f.users[id]
	if !ok || user.Role != role {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeFeedbackStore is an in-memory FeedbackStore.
type fakeFeedbackStore struct {
	records []*models.Feedback
	nextID  int64
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{nextID: 1}
}

func (f *fakeFeedbackStore) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = f.nextID
	feedback.CreatedAt = time.Now()
	f.nextID++
	fb := *feedback
	f.records = append(f.records, &fb)
	return nil
}

func (f *fakeFeedbackStore) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Feedback, error) {
	var result []*models.Feedback
	for _, fb := range f.records {
		if fb.FacultyID == facultyID {
			r := *fb
			result = append(result, &r)
		}
	}
	return result, nil
}

func (f *fakeFeedbackStore) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	result := make([]*models.Feedback, 0, len(f.records))
	for _, fb := range f.records {
		r := *fb
		result = append(result, &r)
	}
	return result, nil
}
