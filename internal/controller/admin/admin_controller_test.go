package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/config"
	"github.com/lshigami/Surveyor/internal/controller"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/lshigami/Surveyor/internal/service"
	"github.com/lshigami/Surveyor/internal/testutil"
	"gorm.io/gorm"
)

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)

	surveyRepo := repository.NewSurveyRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	responseRepo := repository.NewSurveyResponseRepository(db)

	responses := service.NewResponseService(surveyRepo, questionRepo, answerRepo, responseRepo, db)
	insights, err := service.NewInsightService(&config.Config{}, responses)
	if err != nil {
		t.Fatalf("NewInsightService: %v", err)
	}

	r := gin.New()
	api := r.Group(controller.APIBase)
	NewSurveyController(
		service.NewSurveyService(surveyRepo, questionRepo, answerRepo, responseRepo, db),
		service.NewQuestionService(questionRepo, surveyRepo, answerRepo, responseRepo, db),
		responses,
	).RegisterRoutes(api)
	NewAnswerController(
		service.NewAnswerService(answerRepo, questionRepo, responseRepo, db),
		responses,
		insights,
	).RegisterRoutes(api)
	return r, db
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestSurveyLifecycle(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodPost, "/api/surveys", dto.SurveyRequest{Title: "Coffee", Desc: "Morning"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body)
	}
	created := decode[dto.SurveyResponse](t, w)
	if want := "/api/surveys/" + itoa(created.ID); w.Header().Get("Location") != want {
		t.Fatalf("Location = %q, want %q", w.Header().Get("Location"), want)
	}

	w = do(r, http.MethodGet, "/api/surveys/json", nil)
	wrapped := decode[[]dto.ResponseModel[dto.SurveyResponse]](t, w)
	if len(wrapped) != 1 || wrapped[0].ID != created.ID || wrapped[0].Data.Title != "Coffee" {
		t.Fatalf("wrapped = %+v", wrapped)
	}

	w = do(r, http.MethodPost, "/api/surveys/"+itoa(created.ID)+"/question", dto.QuestionRequest{Text: "Taste?"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create question status = %d, body %s", w.Code, w.Body)
	}
	question := decode[dto.QuestionResponse](t, w)
	if question.SurveyID != created.ID {
		t.Fatalf("question survey = %d, want %d", question.SurveyID, created.ID)
	}

	w = do(r, http.MethodDelete, "/api/surveys/"+itoa(created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/question/"+itoa(question.ID), nil)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("question after cascade: status %d body %q", w.Code, w.Body)
	}
}

func TestAdminErrors(t *testing.T) {
	r, db := newRouter(t)
	survey := testutil.SeedSurvey(t, db, "Coffee")
	q := testutil.SeedQuestion(t, db, survey.ID, "Taste?")
	owner := uuid.New()
	answer := testutil.SeedAnswer(t, db, q.ID, testutil.Rating(3), owner)
	stranger := uuid.New()

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		want     int
		wantCode string
	}{
		{"missing survey", http.MethodGet, "/api/surveys/9999", nil, http.StatusNoContent, ""},
		{"malformed id", http.MethodGet, "/api/surveys/abc", nil, http.StatusBadRequest, "invalid_id"},
		{"blank question", http.MethodPost, "/api/surveys/" + itoa(survey.ID) + "/question", dto.QuestionRequest{Text: " "}, http.StatusBadRequest, "missing_text"},
		{"answer without uuid", http.MethodPost, "/api/question/" + itoa(q.ID) + "/answer", dto.AnswerRequest{Rating: testutil.Rating(2)}, http.StatusBadRequest, "missing_user_uuid"},
		{"foreign edit", http.MethodPut, "/api/answer/" + itoa(answer.ID), dto.AnswerRequest{Rating: testutil.Rating(1), UserUUID: &stranger}, http.StatusForbidden, "uuid_mismatch"},
		{"results of unknown survey", http.MethodGet, "/api/surveys/9999/results/full", nil, http.StatusBadRequest, "survey_not_found"},
		{"insight disabled", http.MethodGet, "/api/surveys/" + itoa(survey.ID) + "/results/insight", nil, http.StatusServiceUnavailable, "insight_unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
			if tt.wantCode == "" {
				return
			}
			if body := decode[dto.ErrorResponse](t, w); body.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}

func TestResults(t *testing.T) {
	r, db := newRouter(t)
	survey := testutil.SeedSurvey(t, db, "Coffee")
	q1 := testutil.SeedQuestion(t, db, survey.ID, "Taste?")
	q2 := testutil.SeedQuestion(t, db, survey.ID, "Price?")
	u1, u2 := uuid.New(), uuid.New()
	testutil.SeedAnswer(t, db, q1.ID, testutil.Rating(5), u1)
	testutil.SeedAnswer(t, db, q1.ID, testutil.Rating(2), u2)
	testutil.SeedAnswer(t, db, q2.ID, nil, u1)

	w := do(r, http.MethodGet, "/api/surveys/"+itoa(survey.ID)+"/results/full", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("full status = %d", w.Code)
	}
	full := decode[dto.SurveyResult](t, w)
	if full.Title != "Coffee" || len(full.Questions) != 2 || len(full.Questions[0].Answers) != 2 {
		t.Fatalf("full = %+v", full)
	}

	w = do(r, http.MethodGet, "/api/surveys/"+itoa(survey.ID)+"/results", nil)
	byUser := decode[[]dto.UserResult](t, w)
	if len(byUser) != 2 || byUser[0].UserUUID != u1 || len(byUser[0].UserAnswers) != 2 {
		t.Fatalf("byUser = %+v", byUser)
	}

	// Wire names of the per-user view are part of the public contract.
	var raw []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	entry := raw[0]["userAnswers"].([]any)[0].(map[string]any)
	for _, key := range []string{"idAnswer", "idQuestion", "textQuestion", "answerRating"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("per-user entry missing %q: %v", key, entry)
		}
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
