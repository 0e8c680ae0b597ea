// Package databasetest provides a migrated in-memory database for tests.
package databasetest

import (
	"testing"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a freshly migrated, isolated SQLite database with foreign keys
// enforced. It is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
