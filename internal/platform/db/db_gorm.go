package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	settingsadapters "nikkei_backend/internal/feature/settings/adapters"
)

// OpenDB opens the local SQLite store holding the dashboard settings and
// runs schema migration. The file is created on first boot.
func OpenDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open sqlite at %s: %v", path, err)
	}

	// マイグレーション（Settings）
	if err := db.AutoMigrate(&settingsadapters.SettingsModel{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
