package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/skillpath/skillpath-api/internal/api"
	apiMiddleware "github.com/skillpath/skillpath-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It uses the application's services to create handlers.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	if len(app.config.Server.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   app.config.Server.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	authHandler := api.NewAuthHandler(app.authService)
	profileHandler := api.NewProfileHandler(app.profileService)
	taskHandler := api.NewTaskHandler(
		app.taskService,
		app.ratingService,
		app.recommendationService,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile endpoints
			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile/skills", profileHandler.ReplaceSkills)
			r.Put("/profile/goals", profileHandler.ReplaceGoals)
			r.Put("/profile/preferences", profileHandler.UpdatePreferences)

			// Catalog endpoints
			r.Post("/tasks", taskHandler.CreateTask)
			r.Get("/tasks/{id}", taskHandler.GetTask)
			r.Put("/tasks/{id}", taskHandler.UpdateTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)

			// Engagement endpoints
			r.Post("/tasks/{id}/completion", taskHandler.RecordCompletion)
			r.Post("/tasks/{id}/rating", taskHandler.RecordRating)

			// Recommendation endpoint
			r.Get("/recommendations", taskHandler.GetRecommendations)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
