package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/repset/repset-api/internal/api"
	apiMiddleware "github.com/repset/repset-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	bodyPartHandler := api.NewBodyPartHandler(app.bodyPartService, app.logger)
	exerciseHandler := api.NewExerciseHandler(app.exerciseService, app.logger)
	workoutHandler := api.NewWorkoutHandler(app.workoutService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", authHandler.Me)
			r.Delete("/users/me", authHandler.DeleteAccount)
			r.Put("/users/me/password", authHandler.ChangePassword)

			r.Get("/body-parts", bodyPartHandler.List)
			r.Post("/body-parts", bodyPartHandler.Create)
			r.Delete("/body-parts", bodyPartHandler.DeleteAll)
			r.Put("/body-parts/{bodyPartID}", bodyPartHandler.Rename)
			r.Delete("/body-parts/{bodyPartID}", bodyPartHandler.Delete)

			r.Get("/exercises", exerciseHandler.List)
			r.Post("/exercises", exerciseHandler.Create)
			r.Delete("/exercises", exerciseHandler.DeleteAll)
			r.Put("/exercises/{exerciseID}", exerciseHandler.Rename)
			r.Delete("/exercises/{exerciseID}", exerciseHandler.Delete)

			r.Get("/workouts", workoutHandler.List)
			r.Post("/workouts", workoutHandler.Create)
			r.Put("/workouts", workoutHandler.CreateOrGet)
			r.Delete("/workouts", workoutHandler.DeleteAll)
			// Workouts and their sub-resources are addressed by date;
			// exercises within a workout by name.
			r.Get("/workouts/{date}", workoutHandler.GetByDate)
			r.Delete("/workouts/{date}", workoutHandler.Delete)
			r.Post("/workouts/{date}/end", workoutHandler.End)

			r.Get("/workouts/{date}/body-parts", workoutHandler.ListBodyParts)
			r.Post("/workouts/{date}/body-parts", workoutHandler.AddBodyParts)
			r.Delete("/workouts/{date}/body-parts", workoutHandler.RemoveBodyParts)

			r.Get("/workouts/{date}/blocks", workoutHandler.ListBlocks)
			r.Post("/workouts/{date}/blocks", workoutHandler.CreateBlock)
			r.Delete("/workouts/{date}/blocks/{exerciseName}", workoutHandler.DeleteBlock)
			r.Get("/workouts/{date}/blocks/{exerciseName}/sets", workoutHandler.GetBlockSets)
			r.Put("/workouts/{date}/blocks/{exerciseName}/sets", workoutHandler.UpdateBlockSets)

			r.Put("/sets/{setID}", workoutHandler.UpdateSet)
			r.Delete("/sets/{setID}", workoutHandler.DeleteSet)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
