package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/pkg/apperrors"
)

func newFeedbackFixture() (*FeedbackService, *fakeUserStore, *fakeFeedbackStore) {
	users := newFakeUserStore()
	feedback := newFakeFeedbackStore()
	svc := NewFeedbackService(feedback, users, zerolog.Nop())
	return svc, users, feedback
}

func TestSubmit_RatingBounds(t *testing.T) {
	svc, users, _ := newFeedbackFixture()
	faculty := users.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))
	student := users.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))

	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{"below minimum", 0, true},
		{"minimum", 1, false},
		{"maximum", 5, false},
		{"above maximum", 6, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), student.ID, &dto.SubmitFeedbackRequest{
				FacultyID: faculty.ID,
				Rating:    tt.rating,
			})
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Errorf("Submit error = %v, want validation failure", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Submit returned error: %v", err)
			}
		})
	}
}

func TestSubmit_TargetMustBeFaculty(t *testing.T) {
	svc, users, feedback := newFeedbackFixture()
	student := users.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))
	otherStudent := users.add(models.NewStudentUser("Bora", "bora@school.edu", "hash", "S101", "CS", ""))

	tests := []struct {
		name      string
		facultyID int64
	}{
		{"nonexistent id", 999},
		{"student target", otherStudent.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), student.ID, &dto.SubmitFeedbackRequest{
				FacultyID: tt.facultyID,
				Rating:    4,
			})
			if !errors.Is(err, apperrors.ErrFacultyNotFound) {
				t.Errorf("Submit error = %v, want ErrFacultyNotFound", err)
			}
		})
	}

	if len(feedback.records) != 0 {
		t.Errorf("no records should exist, got %d", len(feedback.records))
	}
}

func TestSubmit_AllowsRepeatSubmissions(t *testing.T) {
	svc, users, feedback := newFeedbackFixture()
	faculty := users.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))
	student := users.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(context.Background(), student.ID, &dto.SubmitFeedbackRequest{
			FacultyID: faculty.ID,
			Rating:    3,
		}); err != nil {
			t.Fatalf("Submit #%d returned error: %v", i+1, err)
		}
	}

	if len(feedback.records) != 2 {
		t.Errorf("len(records) = %d, want 2 (duplicates allowed)", len(feedback.records))
	}
}

func TestListForFaculty_Aggregates(t *testing.T) {
	svc, users, feedback := newFeedbackFixture()
	faculty := users.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))
	other := users.add(models.NewFacultyUser("Dr. Ito", "ito@school.edu", "hash", "F43", "Physics", ""))
	student := users.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))

	for _, rating := range []int{3, 4, 5} {
		feedback.Create(context.Background(), &models.Feedback{StudentID: student.ID, FacultyID: faculty.ID, Rating: rating})
	}
	// A record about another faculty member must not leak into the aggregates.
	feedback.Create(context.Background(), &models.Feedback{StudentID: student.ID, FacultyID: other.ID, Rating: 1})

	resp, err := svc.ListForFaculty(context.Background(), faculty.ID)
	if err != nil {
		t.Fatalf("ListForFaculty returned error: %v", err)
	}

	if resp.Summary.Count != 3 {
		t.Errorf("Count = %d, want 3", resp.Summary.Count)
	}
	if math.Abs(resp.Summary.AverageRating-4.0) > 1e-9 {
		t.Errorf("AverageRating = %v, want 4.0", resp.Summary.AverageRating)
	}
	if len(resp.Feedback) != 3 {
		t.Errorf("len(Feedback) = %d, want 3", len(resp.Feedback))
	}
}

func TestListForFaculty_EmptyIsZero(t *testing.T) {
	svc, users, _ := newFeedbackFixture()
	faculty := users.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))

	resp, err := svc.ListForFaculty(context.Background(), faculty.ID)
	if err != nil {
		t.Fatalf("ListForFaculty returned error: %v", err)
	}

	if resp.Summary.Count != 0 {
		t.Errorf("Count = %d, want 0", resp.Summary.Count)
	}
	if resp.Summary.AverageRating != 0 {
		t.Errorf("AverageRating = %v, want 0 for empty set", resp.Summary.AverageRating)
	}
	if resp.Feedback == nil {
		t.Error("Feedback should be an empty slice, not nil")
	}
}

func TestFacultyDirectory(t *testing.T) {
	svc, users, _ := newFeedbackFixture()
	users.add(models.NewFacultyUser("Dr. Kim", "kim@school.edu", "hash", "F42", "Math", ""))
	users.add(models.NewStudentUser("Ada", "ada@school.edu", "hash", "S100", "CS", ""))
	users.add(models.NewAdminUser("Root", "admin@feedback.com", "hash", "", ""))

	entries, err := svc.FacultyDirectory(context.Background())
	if err != nil {
		t.Fatalf("FacultyDirectory returned error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Name != "Dr. Kim" || entries[0].Department != "Math" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}
