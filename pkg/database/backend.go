package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/budgetwise/internal/adapters/database/memory"
	"github.com/SscSPs/budgetwise/internal/adapters/database/pgsql"
	"github.com/SscSPs/budgetwise/internal/adapters/database/sqlite"
	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
	"github.com/SscSPs/budgetwise/internal/platform/config"
)

// Open connects the configured backend, applies schema migrations and returns the
// repositories for the service container. Callers must Close the provider.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		logger.Info("Running database migrations...")
		changed, err := pgsql.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres migrations: %w", err)
		}
		if changed {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}

		pool, err := NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
		if err != nil {
			return nil, err
		}
		return pgsql.NewRepositoryProvider(pool), nil

	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("sqlite %s: %w", cfg.SQLiteDBPath, err)
		}
		logger.Debug("SQLite database ready", slog.String("path", cfg.SQLiteDBPath))
		return sqlite.NewRepositoryProvider(store), nil

	case config.BackendMemory:
		logger.Warn("Using in-memory storage; data is lost on exit")
		store := memory.NewStore()
		return &portsrepo.RepositoryProvider{Ledger: store, Closer: store}, nil

	default:
		return nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
}
