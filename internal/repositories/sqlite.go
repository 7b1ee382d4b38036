package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"userblog/internal/models"
)

// InMemoryDSN returns a DSN for a private, shared-cache in-memory SQLite
// database. The data disappears with the last open connection.
func InMemoryDSN() string {
	return fmt.Sprintf("file:userblog-%s?mode=memory&cache=shared", uuid.NewString())
}

// OpenSQLite opens dsn through GORM and migrates the user and post tables.
// An empty dsn selects a fresh in-memory database.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = InMemoryDSN()
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// A single connection serializes writers and keeps the in-memory
	// database alive.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.BlogPost{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}
	return db, nil
}
