package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillpath/skillpath-api/internal/config"
	"github.com/skillpath/skillpath-api/internal/domain/recommend"
	"github.com/skillpath/skillpath-api/internal/events"
	"github.com/skillpath/skillpath-api/internal/platform/postgres"
	"github.com/skillpath/skillpath-api/internal/service"
	"github.com/skillpath/skillpath-api/internal/service/auth"
	"github.com/skillpath/skillpath-api/internal/store"
	"github.com/skillpath/skillpath-api/internal/worker"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	taskStore    store.TaskStore
	profileStore store.ProfileStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	recommender      recommend.Service

	authService           service.AuthService
	profileService        service.ProfileService
	taskService           service.TaskService
	ratingService         service.RatingService
	recommendationService service.RecommendationService

	eventEmitter   events.EventEmitter
	scoreRefresher *worker.ScoreRefresher
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies that must be established before
// application wiring: configuration, logger, and the database connection.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.profileStore = postgres.NewPostgresProfileStore(db, logger)

	app.recommender = recommend.NewDefaultService()

	app.authService, err = service.NewAuthService(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.profileService, err = service.NewProfileService(db, app.profileStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)

	app.ratingService, err = service.NewRatingService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create rating service: %w", err)
	}

	app.recommendationService, err = service.NewRecommendationService(
		app.taskStore,
		app.profileStore,
		app.recommender,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation service: %w", err)
	}

	app.scoreRefresher = worker.NewScoreRefresher(
		app.taskStore,
		app.profileStore,
		app.taskStore,
		app.recommender,
		worker.ScoreRefresherConfig{
			QueueSize:   cfg.Recommend.ScoreRefreshQueueSize,
			WorkerCount: cfg.Recommend.ScoreRefreshWorkers,
		},
		logger,
	)
	app.scoreRefresher.Start()

	if emitter, ok := app.eventEmitter.(*events.InMemoryEventEmitter); ok {
		emitter.RegisterHandler(app.scoreRefresher)
	} else {
		return nil, fmt.Errorf("unexpected event emitter type, cannot register score refresher")
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.scoreRefresher != nil {
		app.scoreRefresher.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

// shutdownTimeout returns the configured graceful shutdown window, falling
// back to ten seconds when unset.
func (app *application) shutdownTimeout() time.Duration {
	if app.config.Server.ShutdownTimeoutSeconds > 0 {
		return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	}
	return 10 * time.Second
}
