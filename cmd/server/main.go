// Package main implements the entry point for the RepSet API server,
// which tracks users' workouts, exercises and per-set training volume.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/repset/repset-api/internal/config"
	"github.com/repset/repset-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status) instead of starting the server",
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if *migrateCmd != "" {
		if err := runMigrationCommand(cfg, appLogger, *migrateCmd); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		return
	}

	if err := run(cfg, appLogger); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// run wires up the application and starts the HTTP server, blocking
// until shutdown completes.
func run(cfg *config.Config, appLogger *slog.Logger) error {
	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := applyMigrations(app.db, appLogger); err != nil {
		app.cleanup()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
