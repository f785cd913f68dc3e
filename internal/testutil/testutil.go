package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/database"
	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a fresh, migrated sqlite database private to the test.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "surveyor_test.db")
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(path)), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func SeedSurvey(tb testing.TB, db *gorm.DB, title string) *model.Survey {
	tb.Helper()
	s := &model.Survey{Title: title, Desc: title + " description"}
	if err := db.WithContext(context.Background()).Create(s).Error; err != nil {
		tb.Fatalf("seed survey: %v", err)
	}
	return s
}

func SeedQuestion(tb testing.TB, db *gorm.DB, surveyID uint, text string) *model.Question {
	tb.Helper()
	q := &model.Question{SurveyID: surveyID, Text: text}
	if err := db.WithContext(context.Background()).Omit("Survey").Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedAnswer(tb testing.TB, db *gorm.DB, questionID uint, rating *int, user uuid.UUID) *model.Answer {
	tb.Helper()
	a := model.NewAnswer(questionID, rating, user)
	if err := db.WithContext(context.Background()).Omit("Question").Create(&a).Error; err != nil {
		tb.Fatalf("seed answer: %v", err)
	}
	return &a
}

func CountAnswers(tb testing.TB, db *gorm.DB) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(&model.Answer{}).Count(&n).Error; err != nil {
		tb.Fatalf("count answers: %v", err)
	}
	return n
}

func Rating(v int) *int { return &v }
