package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/repset/repset-api/internal/config"
	"github.com/repset/repset-api/internal/platform/postgres"
	"github.com/repset/repset-api/internal/service"
	"github.com/repset/repset-api/internal/service/auth"
	"github.com/repset/repset-api/internal/store"
)

// application holds all initialized dependencies for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService auth.JWTService

	userService     service.UserService
	bodyPartService service.BodyPartService
	exerciseService service.ExerciseService
	workoutService  service.WorkoutService
}

// newApplication connects to the database and wires the store, service
// and auth layers together.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewUserStore(db, logger)
	bodyPartStore := postgres.NewBodyPartStore(db, logger)
	exerciseStore := postgres.NewExerciseStore(db, logger)
	workoutStore := postgres.NewWorkoutStore(db, logger)
	blockStore := postgres.NewExerciseBlockStore(db, logger)
	setStore := postgres.NewSetStore(db, logger)

	runTx := store.NewTxRunner(db)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		jwtService: jwtService,
		userService: service.NewUserService(
			userStore, hasher, verifier, runTx, logger,
		),
		bodyPartService: service.NewBodyPartService(bodyPartStore, logger),
		exerciseService: service.NewExerciseService(
			exerciseStore, bodyPartStore, logger,
		),
		workoutService: service.NewWorkoutService(
			workoutStore, bodyPartStore, exerciseStore, blockStore, setStore, runTx, logger,
		),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeQuietly(app.db, app.logger)
}

func closeQuietly(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
