package models

import (
	"time"
)

// Rating bounds for a feedback record.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback defines one rating event based on the 'feedback' table. Records are
// append-only: no exposed operation mutates or deletes them after creation.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"` // Author, always role STUDENT
	FacultyID int64     `json:"facultyId" db:"faculty_id"` // Subject, always role FACULTY
	Rating    int       `json:"rating" db:"rating"`        // Integer in [1,5]
	Comments  string    `json:"comments" db:"comments"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated on read when identity resolution is requested)
	Student *User `json:"student,omitempty"`
	Faculty *User `json:"faculty,omitempty"`
}

// FeedbackSummary holds read-time aggregates over a feedback set.
type FeedbackSummary struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"` // 0 when the set is empty
}

// Summarize computes the count and arithmetic mean of ratings for a record set.
func Summarize(records []*Feedback) FeedbackSummary {
	summary := FeedbackSummary{Count: len(records)}
	if len(records) == 0 {
		return summary
	}

	total := 0
	for _, fb := range records {
		total += fb.Rating
	}
	summary.AverageRating = float64(total) / float64(len(records))
	return summary
}
