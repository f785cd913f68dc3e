package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/apperr"
	"github.com/lshigami/Surveyor/internal/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.NotFound("survey_not_found", "survey 1 not found"), http.StatusNoContent},
		{"invalid argument", apperr.InvalidArgument("empty_submission", "no answers"), http.StatusBadRequest},
		{"access denied", fmt.Errorf("submit: %w", apperr.AccessDenied("already_answered", "answered")), http.StatusForbidden},
		{"unavailable", apperr.Unavailable("insight_unavailable", "off"), http.StatusServiceUnavailable},
		{"internal", apperr.Internal(errors.New("disk"), "write"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Fatalf("StatusOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondError(c, err)
	c.Writer.WriteHeaderNow()
	return w
}

func TestRespondError(t *testing.T) {
	t.Run("not found has empty body", func(t *testing.T) {
		w := respond(apperr.NotFound("answer_not_found", "answer 3 not found"))
		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("body = %q, want empty", w.Body.String())
		}
	})

	t.Run("access denied carries code", func(t *testing.T) {
		w := respond(apperr.AccessDenied("uuid_mismatch", "answer 3 belongs to another user"))
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		var body dto.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Code != "uuid_mismatch" || body.Error != "answer 3 belongs to another user" {
			t.Fatalf("body = %+v", body)
		}
	})

	t.Run("internal hides cause", func(t *testing.T) {
		w := respond(apperr.Internal(errors.New("password=secret"), "create survey"))
		var body dto.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Error != "create survey" || body.Code != "internal" {
			t.Fatalf("body = %+v", body)
		}
	})
}

func TestParams(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		uuid   string
		wantOK bool
	}{
		{"valid", "12", "2b1e7c0a-4a44-4c1c-9c84-8f4d0b8a1e11", true},
		{"negative id", "-1", "2b1e7c0a-4a44-4c1c-9c84-8f4d0b8a1e11", false},
		{"bad uuid", "12", "not-a-uuid", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			var ok bool
			r.GET("/s/:id/u/:uuid", func(c *gin.Context) {
				if _, ok = IDParam(c, "id"); !ok {
					return
				}
				_, ok = UUIDParam(c, "uuid")
			})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/s/"+tt.id+"/u/"+tt.uuid, nil))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK && w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}
