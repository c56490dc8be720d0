package db

import (
	"path/filepath"
	"testing"

	settingsadapters "nikkei_backend/internal/feature/settings/adapters"
)

func TestOpenDB_CreatesAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	database := OpenDB(path)
	if database == nil {
		t.Fatal("expected non-nil db")
	}

	if !database.Migrator().HasTable(&settingsadapters.SettingsModel{}) {
		t.Error("expected settings table to be migrated")
	}
}
