// Command server runs the PiXELL roster: the employee form pages and the
// JSON API over one document store. APP_PROFILE picks configs/<profile>.yaml.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/pixell-roster/internal/adapters/http"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/config"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev or prod)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	provide(injector, cfg, logger)

	backend, err := do.Invoke[ports.DocumentBackend](injector)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	defer closeBackend(backend, logger)

	// The roster is seeded before the first request can read it.
	seedCtx, cancelSeed := context.WithTimeout(logging.WithLogger(ctx, logger), storeOpenTimeout)
	err = do.MustInvoke[ports.RosterRepository](injector).Init(seedCtx)
	cancelSeed()
	if err != nil {
		return fmt.Errorf("initializing roster: %w", err)
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	do.MustInvoke[ports.HealthRegistry](injector).Register(backend)

	logger.Info("roster server starting",
		slog.String("addr", server.Addr()),
		slog.String("profile", profile),
		slog.String("store", backend.Name()),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancelDrain()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}
