package storetest

import (
	"path/filepath"
	"testing"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/database"
	"rental-backoffice/internal/store"

	"gorm.io/gorm"
)

// OpenDB returns a migrated SQLite database in a temp dir, closed on cleanup.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("init test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Open returns a Recorder over a fresh GormStore plus the underlying DB for
// seeding fixtures.
func Open(t testing.TB) (*Recorder, *gorm.DB) {
	t.Helper()
	db := OpenDB(t)
	return New(store.NewGormStore(db)), db
}
