package database

import (
	"errors"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewGormDBFromConfig creates a new GORM database connection from config
func NewGormDBFromConfig(databaseURL string) (*gorm.DB, error) {
	return NewGormDB(databaseURL)
}

// NewGormDB opens a GORM connection for the provided DSN. Postgres URLs get
// the postgres driver; anything else is treated as a SQLite file path, which
// is what the bot ships with by default.
func NewGormDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not set")
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}
