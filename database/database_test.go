package database

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/Surveyor/config"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Database
		wantName string
		wantErr  bool
	}{
		{"default is postgres", config.Database{Host: "db", Port: "5432", User: "u", Name: "surveys"}, "postgres", false},
		{"sqlite", config.Database{Driver: "sqlite", SQLitePath: "x.db"}, "sqlite", false},
		{"unknown", config.Database{Driver: "mysql"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Dialector(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Dialector() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && d.Name() != tt.wantName {
				t.Fatalf("Name() = %q, want %q", d.Name(), tt.wantName)
			}
		})
	}
}

func TestNewDatabase_SQLiteMigrates(t *testing.T) {
	cfg := &config.Config{
		AppEnv:   "production",
		Database: config.Database{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "surveyor.db")},
	}
	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range []string{"surveys", "questions", "answers", "survey_responses"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %q missing after migrate", table)
		}
	}
}
