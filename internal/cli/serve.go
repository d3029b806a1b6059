package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/budgetwise/internal/handlers"
)

type ServeCmd struct {
	Port string `help:"Port to listen on; overrides PORT." placeholder:"PORT"`
}

func (cmd *ServeCmd) Run(ctx *kong.Context, app *App) error {
	port := app.Config.Port
	if cmd.Port != "" {
		port = cmd.Port
	}

	runCtx, stop := signal.NotifyContext(app.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	printInfof(ctx.Stdout, "Serving budgetwise API on %s", ln.Addr())
	return serve(runCtx, app, ln)
}

// serve runs the HTTP API on ln until ctx is cancelled, then drains in-flight
// requests for at most the configured shutdown timeout.
func serve(ctx context.Context, app *App, ln net.Listener) error {
	router, err := handlers.NewRouter(app.Config, app.Logger, app.Services)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.Logger.Info("Server starting", slog.String("addr", ln.Addr().String()), slog.String("backend", app.Config.Backend))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		app.Logger.Info("Shutting down server", slog.Duration("timeout", app.Config.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	app.Logger.Info("Server stopped")
	return nil
}
