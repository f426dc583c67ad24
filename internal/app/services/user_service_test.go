package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name    string
		role    models.RoleType
		req     dto.CreateUserRequest
		wantErr bool
	}{
		{
			name: "faculty account",
			role: models.RoleFaculty,
			req:  dto.CreateUserRequest{Name: "Dr. Kim", Email: "kim@school.edu", Password: "password123", FacultyID: "F42", Department: "Math"},
		},
		{
			name: "student account",
			role: models.RoleStudent,
			req:  dto.CreateUserRequest{Name: "Ada", Email: "ada@school.edu", Password: "password123", StudentID: "S100"},
		},
		{
			name:    "admin role rejected",
			role:    models.RoleAdmin,
			req:     dto.CreateUserRequest{Name: "Root", Email: "root@school.edu", Password: "password123"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeUserStore()
			svc := NewUserService(store, nil, zerolog.Nop())

			user, err := svc.Create(context.Background(), tt.role, &tt.req)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Fatalf("Create error = %v, want validation failure", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if user.Role != tt.role {
				t.Errorf("Role = %q, want %q", user.Role, tt.role)
			}
			if user.Password == tt.req.Password {
				t.Error("password must be stored hashed")
			}
		})
	}
}

func TestUserService_Create_DuplicateEmailAcrossRoles(t *testing.T) {
	store := newFakeUserStore()
	store.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))
	svc := NewUserService(store, nil, zerolog.Nop())

	// Email uniqueness spans the whole directory, not just the managed role.
	_, err := svc.Create(context.Background(), models.RoleFaculty, &dto.CreateUserRequest{
		Name:      "Dr. Ada",
		Email:     "ADA@school.edu",
		Password:  "password123",
		FacultyID: "F42",
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("Create error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUserService_Update_RoleFilter(t *testing.T) {
	store := newFakeUserStore()
	student := store.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))
	svc := NewUserService(store, nil, zerolog.Nop())

	// Updating a student through the faculty management path must report the
	// faculty entity as missing, not touch the record.
	_, err := svc.Update(context.Background(), student.ID, models.RoleFaculty, &dto.UpdateUserRequest{Name: "Hacked"})
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("Update error = %v, want ErrFacultyNotFound", err)
	}

	stored, _ := store.GetByID(context.Background(), student.ID)
	if stored.Name != "Ada" {
		t.Errorf("record modified through wrong-role path: name = %q", stored.Name)
	}
}

func TestUserService_Update_RoleIsImmutable(t *testing.T) {
	store := newFakeUserStore()
	faculty := store.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))
	svc := NewUserService(store, nil, zerolog.Nop())

	updated, err := svc.Update(context.Background(), faculty.ID, models.RoleFaculty, &dto.UpdateUserRequest{
		Name:      "Dr. Kim Jr.",
		FacultyID: "F43",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Role != models.RoleFaculty {
		t.Errorf("Role = %q, want FACULTY", updated.Role)
	}
	if updated.FacultyNo == nil || *updated.FacultyNo != "F43" {
		t.Errorf("FacultyNo not patched: %v", updated.FacultyNo)
	}

	stored, _ := store.GetByID(context.Background(), faculty.ID)
	if stored.Role != models.RoleFaculty {
		t.Errorf("stored role changed to %q", stored.Role)
	}
}

func TestUserService_Delete_RoleFilter(t *testing.T) {
	store := newFakeUserStore()
	admin := store.add(models.NewAdminUser("Root", "admin@feedback.com", "hash", "", ""))
	faculty := store.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))
	svc := NewUserService(store, nil, zerolog.Nop())

	// Admins never match the faculty or student filters, so they are not
	// deletable through the management paths.
	if err := svc.Delete(context.Background(), admin.ID, models.RoleFaculty); !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Errorf("Delete(admin as faculty) error = %v, want ErrFacultyNotFound", err)
	}
	if err := svc.Delete(context.Background(), admin.ID, models.RoleStudent); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("Delete(admin as student) error = %v, want ErrStudentNotFound", err)
	}
	if _, err := store.GetByID(context.Background(), admin.ID); err != nil {
		t.Error("admin record should still exist")
	}

	if err := svc.Delete(context.Background(), faculty.ID, models.RoleFaculty); err != nil {
		t.Fatalf("Delete(faculty) returned error: %v", err)
	}
	if _, err := store.GetByID(context.Background(), faculty.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Error("faculty record should be gone")
	}
}

func TestUserService_Delete_MissingTarget(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), 999, models.RoleStudent); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("Delete error = %v, want ErrStudentNotFound", err)
	}
}

func TestUserService_ListByRole(t *testing.T) {
	store := newFakeUserStore()
	store.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))
	store.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))
	store.add(models.NewStudentUser("Bora", "bora@school.edu", "hash", "S101", "CS", ""))
	svc := NewUserService(store, nil, zerolog.Nop())

	students, err := svc.ListByRole(context.Background(), models.RoleStudent)
	if err != nil {
		t.Fatalf("ListByRole returned error: %v", err)
	}
	if len(students) != 2 {
		t.Errorf("len(students) = %d, want 2", len(students))
	}
	for _, s := range students {
		if s.Role != models.RoleStudent {
			t.Errorf("unexpected role %q in student listing", s.Role)
		}
	}
}
