package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"flighttrack/logbook/internal/config"
	gormModels "flighttrack/logbook/internal/models/gorm"
)

var ORM *gorm.DB

// InitORM opens the GORM store for the configured variant and migrates the
// logbook tables.
func InitORM(cfg *config.Config) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	if cfg.IsPostgres() {
		conn, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	} else {
		conn, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.DBDriver, err)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	ORM = conn
	return conn, nil
}

// Migrate creates or updates the logbook tables.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&gormModels.Flight{},
		&gormModels.Aircraft{},
		&gormModels.Reminder{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
