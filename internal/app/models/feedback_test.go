package models

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	ratings := func(values ...int) []*Feedback {
		records := make([]*Feedback, 0, len(values))
		for _, v := range values {
			records = append(records, &Feedback{Rating: v})
		}
		return records
	}

	tests := []struct {
		name      string
		records   []*Feedback
		wantCount int
		wantMean  float64
	}{
		{"empty set", nil, 0, 0},
		{"single record", ratings(5), 1, 5},
		{"whole mean", ratings(3, 4, 5), 3, 4},
		{"fractional mean", ratings(1, 2), 2, 1.5},
		{"all minimum", ratings(1, 1, 1, 1), 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if math.Abs(got.AverageRating-tt.wantMean) > 1e-9 {
				t.Errorf("AverageRating = %v, want %v", got.AverageRating, tt.wantMean)
			}
		})
	}
}

func TestRoleTypeValid(t *testing.T) {
	tests := []struct {
		role RoleType
		want bool
	}{
		{RoleAdmin, true},
		{RoleFaculty, true},
		{RoleStudent, true},
		{RoleType("TEACHER"), false},
		{RoleType(""), false},
		{RoleType("student"), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("RoleType(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
