package database

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitTestDB points the global handle at a private in-memory store for the
// lifetime of one test. Each call opens a fresh, empty database.
func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// An in-memory SQLite database exists per connection, so the pool must
	// stay at exactly one connection or queries would see different stores.
	sqlDB, err := testDB.DB()
	if err != nil {
		t.Fatalf("get test database handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(testDB); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	prev := db
	db = testDB
	t.Cleanup(func() {
		db = prev
		sqlDB.Close()
	})

	return testDB
}
