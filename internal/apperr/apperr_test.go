package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsSurviveWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	tests := []struct {
		name     string
		err      error
		kind     error
		wantCode string
	}{
		{"not found", NotFound("survey_not_found", "survey %d not found", 7), ErrNotFound, "survey_not_found"},
		{"invalid argument", InvalidArgument("missing_user_uuid", "user uuid is required"), ErrInvalidArgument, "missing_user_uuid"},
		{"access denied", AccessDenied("already_answered", "survey already answered"), ErrAccessDenied, "already_answered"},
		{"internal", Internal(cause, "building summary"), ErrInternal, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.kind)
			}
			if got := CodeOf(wrapped); got != tt.wantCode {
				t.Errorf("CodeOf() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause, "building summary")
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false")
	}
	if got, want := err.Error(), "building summary: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := MessageOf(err); got != "building summary" {
		t.Errorf("MessageOf() = %q", got)
	}
}
