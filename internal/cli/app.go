package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
	"github.com/SscSPs/budgetwise/internal/core/services"
	"github.com/SscSPs/budgetwise/internal/platform/config"
	"github.com/SscSPs/budgetwise/internal/platform/logging"
	"github.com/SscSPs/budgetwise/pkg/database"
)

// App is what every command runs against: configuration, a logger and the
// service container on top of the configured backend.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Services *portssvc.ServiceContainer
	Now      func() time.Time

	repos *portsrepo.RepositoryProvider
}

// Apply copies every flag that was set onto cfg.
func (g Globals) Apply(cfg *config.Config) {
	if g.Backend != "" {
		cfg.Backend = g.Backend
	}
	if g.DatabaseURL != "" {
		cfg.DatabaseURL = g.DatabaseURL
	}
	if g.SQLitePath != "" {
		cfg.SQLiteDBPath = g.SQLitePath
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
}

// NewApp loads configuration, applies the global flags, opens the backend and builds
// the services. Interactive commands log at warn unless --log-level says otherwise.
func NewApp(ctx context.Context, globals Globals, interactive bool, logOutput io.Writer) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	globals.Apply(cfg)
	if interactive && globals.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.LogFormat
	if logOutput != nil {
		logCfg.Output = logOutput
	}
	logger := logging.New(logCfg)

	repos, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Backend, err)
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Services: services.NewServiceContainer(repos, logger),
		Now:      time.Now,
		repos:    repos,
	}, nil
}

// Context returns a background context carrying the app logger.
func (a *App) Context() context.Context {
	return logging.WithLogger(context.Background(), a.Logger)
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a.repos == nil {
		return nil
	}
	return a.repos.Close()
}
