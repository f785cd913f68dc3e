package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/testutil"
)

func TestSurveyResponseCreate_DuplicateIsUniqueViolation(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSurveyResponseRepository(db)
	survey := testutil.SeedSurvey(t, db, "Coffee")
	user := uuid.New()

	if err := repo.Create(ctx, &model.SurveyResponse{SurveyID: survey.ID, UserUUID: user}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := repo.Create(ctx, &model.SurveyResponse{SurveyID: survey.ID, UserUUID: user})
	if err == nil {
		t.Fatalf("second create succeeded, want unique violation")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("IsUniqueViolation(%v) = false", err)
	}

	// Another user on the same survey is fine.
	if err := repo.Create(ctx, &model.SurveyResponse{SurveyID: survey.ID, UserUUID: uuid.New()}); err != nil {
		t.Fatalf("create for other user: %v", err)
	}
}

func TestSurveyResponsePruneStale(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewSurveyResponseRepository(db)

	survey := testutil.SeedSurvey(t, db, "Coffee")
	q := testutil.SeedQuestion(t, db, survey.ID, "Taste?")
	kept, stale := uuid.New(), uuid.New()
	testutil.SeedAnswer(t, db, q.ID, testutil.Rating(4), kept)

	for _, u := range []uuid.UUID{kept, stale} {
		if err := repo.Create(ctx, &model.SurveyResponse{SurveyID: survey.ID, UserUUID: u}); err != nil {
			t.Fatalf("create response: %v", err)
		}
	}

	if err := repo.PruneStale(ctx, survey.ID); err != nil {
		t.Fatalf("PruneStale: %v", err)
	}

	tests := []struct {
		name string
		user uuid.UUID
		want bool
	}{
		{"user with answers keeps response", kept, true},
		{"user without answers loses response", stale, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Exists(ctx, survey.ID, tt.user)
			if err != nil {
				t.Fatalf("Exists: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Exists = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnswerRepository_OrderAndBatch(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewAnswerRepository(db)

	survey := testutil.SeedSurvey(t, db, "Coffee")
	q := testutil.SeedQuestion(t, db, survey.ID, "Taste?")
	user := uuid.New()

	batch := []model.Answer{
		model.NewAnswer(q.ID, testutil.Rating(3), user),
		model.NewAnswer(q.ID, nil, user),
		model.NewAnswer(q.ID, testutil.Rating(5), user),
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	for i, a := range batch {
		if a.ID == 0 {
			t.Fatalf("batch[%d] has no id after insert", i)
		}
	}

	got, err := repo.FindByQuestionID(ctx, q.ID)
	if err != nil {
		t.Fatalf("FindByQuestionID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d answers, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("answers not in ascending id order: %d then %d", got[i-1].ID, got[i].ID)
		}
	}
	if got[1].Rating != nil {
		t.Fatalf("skipped answer rating = %d, want nil", *got[1].Rating)
	}
	if got[0].UserUUID != user {
		t.Fatalf("user uuid = %s, want %s", got[0].UserUUID, user)
	}
}

func TestAnswerRepository_UpdateToNilRating(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewAnswerRepository(db)

	survey := testutil.SeedSurvey(t, db, "Coffee")
	q := testutil.SeedQuestion(t, db, survey.ID, "Taste?")
	a := testutil.SeedAnswer(t, db, q.ID, testutil.Rating(2), uuid.New())

	a.Rating = nil
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.FindByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Rating != nil {
		t.Fatalf("rating = %d, want nil", *got.Rating)
	}
}

func TestFindByID_MissingIsNotFound(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	_, err := NewSurveyRepository(db).FindByID(ctx, 42)
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(%v) = false", err)
	}
	_, err = NewQuestionRepository(db).FindByID(ctx, 42)
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(%v) = false", err)
	}
}

func TestDeleteByQuestionIDs_EmptyIsNoop(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	survey := testutil.SeedSurvey(t, db, "Coffee")
	q := testutil.SeedQuestion(t, db, survey.ID, "Taste?")
	testutil.SeedAnswer(t, db, q.ID, testutil.Rating(1), uuid.New())

	if err := NewAnswerRepository(db).DeleteByQuestionIDs(ctx, nil); err != nil {
		t.Fatalf("DeleteByQuestionIDs(nil): %v", err)
	}
	if n := testutil.CountAnswers(t, db); n != 1 {
		t.Fatalf("answers = %d, want 1", n)
	}
}
