package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/repset/repset-api/internal/config"
	"github.com/repset/repset-api/migrations"
)

// applyMigrations brings the schema up to date on server start.
func applyMigrations(db *sql.DB, logger *slog.Logger) error {
	if err := prepareGoose(); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}

// runMigrationCommand executes a single migration command (up, down or
// status) and exits, for use from the -migrate flag.
func runMigrationCommand(cfg *config.Config, logger *slog.Logger, command string) error {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer closeQuietly(db, logger)

	if err := prepareGoose(); err != nil {
		return err
	}

	logger.Info("Executing migration command", "command", command)

	switch command {
	case "up":
		return goose.Up(db, ".")
	case "down":
		return goose.Down(db, ".")
	case "status":
		return goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command %q (expected up, down or status)", command)
	}
}

func prepareGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return nil
}
