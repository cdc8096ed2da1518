// Package main implements the entry point for the SkillPath API server,
// which matches users' skills and goals against a catalog of learning
// tasks and serves scored recommendations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/skillpath/skillpath-api/internal/config"
	"github.com/skillpath/skillpath-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command instead of the server (up, down, status)",
	)
	flag.Parse()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd); err != nil {
			appLogger.Error("migration failed", "command", *migrateCmd, "error", err)
			log.Fatalf("Migration failed: %v", err)
		}
		appLogger.Info("migration completed", "command", *migrateCmd)
		return
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, appLogger, nil
}
