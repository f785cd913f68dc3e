package model

import (
	"testing"

	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

func TestClampRating(t *testing.T) {
	tests := []struct {
		name   string
		rating *int
		want   *int
	}{
		{"nil stays nil", nil, nil},
		{"below range", intPtr(-3), intPtr(1)},
		{"zero", intPtr(0), intPtr(1)},
		{"lower bound", intPtr(1), intPtr(1)},
		{"inside range", intPtr(3), intPtr(3)},
		{"upper bound", intPtr(5), intPtr(5)},
		{"above range", intPtr(42), intPtr(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampRating(tt.rating)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ClampRating() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ClampRating() = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestClampRatingDoesNotAliasInput(t *testing.T) {
	in := intPtr(9)
	out := ClampRating(in)
	if *in != 9 {
		t.Errorf("input mutated to %d", *in)
	}
	*out = 2
	if *in != 9 {
		t.Errorf("output aliases input")
	}
}

func TestNewAnswer(t *testing.T) {
	user := uuid.New()
	a := NewAnswer(4, intPtr(7), user)
	if a.QuestionID != 4 || a.UserUUID != user {
		t.Errorf("NewAnswer() = %+v", a)
	}
	if a.Rating == nil || *a.Rating != MaxRating {
		t.Errorf("Rating = %v, want %d", a.Rating, MaxRating)
	}
	if a.ID != 0 {
		t.Errorf("ID = %d, want 0 before persistence", a.ID)
	}
}
