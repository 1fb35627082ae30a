package main

import (
	"context"
	"io"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/pixell-roster/internal/adapters/http"
	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pixell-roster/internal/adapters/store"
	"github.com/jsamuelsen11/pixell-roster/internal/app"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/config"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/health"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

// provide registers the lazy constructors of the server graph. Resolving
// *adapthttp.Server builds everything below it.
func provide(i *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// storage
	do.Provide(i, func(do.Injector) (ports.DocumentBackend, error) {
		ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
		defer cancel()
		return store.OpenBackend(ctx, cfg.Store)
	})
	do.Provide(i, func(i do.Injector) (ports.RosterRepository, error) {
		return store.NewRepository(do.MustInvoke[ports.DocumentBackend](i), store.WithKey(cfg.Store.Key)), nil
	})

	// services
	do.Provide(i, func(i do.Injector) (ports.RosterService, error) {
		return app.NewRosterService(
			do.MustInvoke[ports.RosterRepository](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})
	do.Provide(i, func(i do.Injector) (ports.FormService, error) {
		return app.NewFormController(do.MustInvoke[ports.RosterService](i), logger), nil
	})
	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// http
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Roster: handlers.NewRosterHandler(do.MustInvoke[ports.RosterService](i)),
			Form:   handlers.NewFormHandler(do.MustInvoke[ports.FormService](i)),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}
		stack := middleware.Stack(middleware.StackConfig{
			Logger:         logger,
			Metrics:        do.MustInvoke[*telemetry.Metrics](i),
			RequestTimeout: cfg.Server.WriteTimeout,
		})
		return adapthttp.NewRouter(h, stack), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

// closeBackend releases the connections the sqlite and postgres backends hold.
func closeBackend(backend ports.DocumentBackend, logger *slog.Logger) {
	c, ok := backend.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Error("closing store failed", slog.Any("error", err))
	}
}
