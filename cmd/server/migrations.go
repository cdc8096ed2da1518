package main

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/skillpath/skillpath-api/internal/config"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "source", "goose")
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "source", "goose")
}

// runMigrations executes the given goose command against the configured
// database using the embedded migration files.
func runMigrations(cfg *config.Config, command string) error {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close migration database connection", "error", closeErr)
		}
	}()

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(embeddedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, "migrations")
	case "down":
		err = goose.Down(db, "migrations")
	case "status":
		err = goose.Status(db, "migrations")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	return nil
}
