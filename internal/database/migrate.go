package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MigrationStatus is one migration and whether it has been applied
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

func newProvider(pool *pgxpool.Pool) (*goose.Provider, func() error, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, nil, err
	}
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return provider, db.Close, nil
}

// Migrate applies every pending embedded migration
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	if len(results) == 0 {
		slog.Default().Info(LogMsgSchemaUpToDate)
	}
	return nil
}

// RunMigrateCommand executes one of up, down or status
func RunMigrateCommand(ctx context.Context, pool *pgxpool.Pool, command string) ([]MigrationStatus, error) {
	switch command {
	case MigrateUp:
		if err := Migrate(ctx, pool); err != nil {
			return nil, err
		}
	case MigrateDown:
		provider, closeDB, err := newProvider(pool)
		if err != nil {
			return nil, err
		}
		defer closeDB()
		if _, err := provider.Down(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}
	case MigrateStatus:
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownMigrateCommand, command)
	}
	return Status(ctx, pool)
}

// Status lists every embedded migration
func Status(ctx context.Context, pool *pgxpool.Pool) ([]MigrationStatus, error) {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
