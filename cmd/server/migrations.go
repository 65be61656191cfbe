package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/internhub/internhub-api/migrations"
)

// gooseLogger adapts slog to the goose.Logger interface.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// configureGoose points goose at the embedded migration scripts.
func configureGoose(logger *slog.Logger) error {
	goose.SetBaseFS(migrations.Files)
	goose.SetLogger(&gooseLogger{logger: logger.With(slog.String("component", "migrations"))})
	return goose.SetDialect("postgres")
}

// applyMigrations brings the schema up to date. It runs on every startup;
// goose skips migrations that are already applied.
func applyMigrations(db *sql.DB, logger *slog.Logger) error {
	if err := configureGoose(logger); err != nil {
		return fmt.Errorf("failed to configure migrations: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}

// runMigrationCommand executes a single migration command (up, down, status)
// for the -migrate flag.
func runMigrationCommand(db *sql.DB, command string, logger *slog.Logger) error {
	if err := configureGoose(logger); err != nil {
		return fmt.Errorf("failed to configure migrations: %w", err)
	}

	switch command {
	case "up":
		return goose.Up(db, ".")
	case "down":
		return goose.Down(db, ".")
	case "status":
		return goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}
}
