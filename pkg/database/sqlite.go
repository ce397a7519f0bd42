package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens a pure-Go SQLite database with foreign keys enforced.
// Use ":memory:" for a private in-memory database; the pool is pinned to
// one connection so every query sees the same memory database.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Connect opens the database for the named driver ("postgres" or "sqlite").
func Connect(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "", "postgres":
		return Open(dsn)
	case "sqlite":
		return OpenSQLite(dsn)
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}
