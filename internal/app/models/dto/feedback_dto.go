package dto

import (
	"time"

	"github.com/emre/campusvoice/internal/app/models"
)

// SubmitFeedbackRequest represents a student submitting a rating for a faculty
// member. Rating bounds are enforced in the service so out-of-range values
// surface as field-level validation failures.
type SubmitFeedbackRequest struct {
	FacultyID int64  `json:"facultyId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comments  string `json:"comments"`
}

// UserRef is the resolved identity shown alongside a feedback record
type UserRef struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
}

// FeedbackResponse represents one feedback record with resolved identities
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	Student   *UserRef  `json:"student,omitempty"`
	Faculty   *UserRef  `json:"faculty,omitempty"`
}

// FacultyFeedbackResponse is the faculty dashboard view: the records about one
// faculty member plus read-time aggregates.
type FacultyFeedbackResponse struct {
	Feedback []FeedbackResponse     `json:"feedback"`
	Summary  models.FeedbackSummary `json:"summary"`
}

// FacultyDirectoryEntry is the student-facing projection used to populate the
// faculty selection when submitting feedback.
type FacultyDirectoryEntry struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
