package database

import (
	"fmt"
	"os"
	"path/filepath"

	"wardrobe-service/internal/model"
	"wardrobe-service/pkg/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the embedded store and runs migrations
func InitDB(config *config.Config) error {
	var err error

	// Configure GORM logger
	logLevel := logger.Error
	if config.Server.Env == "development" {
		logLevel = logger.Info
	}

	// Make sure the directory holding the store file exists
	if dir := filepath.Dir(config.Database.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Open connection
	db, err = gorm.Open(sqlite.Open(config.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config. SQLite allows a single
	// writer, so the open-connection limit defaults to 1.
	sqlDB.SetMaxIdleConns(config.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.Database.ConnMaxLifetime)

	// Run migrations
	if err := migrate(db); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// migrate creates the three entity tables and their secondary indexes.
// Migrations are additive only.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.WardrobeItem{},
		&model.OutfitRecord{},
		&model.Inspiration{},
	)
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// Close releases the underlying store handle
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
