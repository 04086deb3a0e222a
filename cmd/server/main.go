// Package main is the entry point for the cluster_conf service. It wires all
// dependencies using samber/do v2, runs the HTTP server next to the override
// snapshot refresher, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/catalog"
	adapthttp "github.com/jsamuelsen11/clusterconf/internal/adapters/http"
	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/clusterconf/internal/adapters/store"

	"github.com/jsamuelsen11/clusterconf/internal/app"
	"github.com/jsamuelsen11/clusterconf/internal/app/snapshot"
	"github.com/jsamuelsen11/clusterconf/internal/platform/config"
	"github.com/jsamuelsen11/clusterconf/internal/platform/health"
	"github.com/jsamuelsen11/clusterconf/internal/platform/logging"
	"github.com/jsamuelsen11/clusterconf/internal/platform/telemetry"
	"github.com/jsamuelsen11/clusterconf/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
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
		otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer otelCancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	overrides := do.MustInvoke[store.Store](injector)
	defer func() {
		if err := overrides.Close(); err != nil {
			logger.Error("override store close error", slog.Any("error", err))
		}
	}()
	snap := do.MustInvoke[*snapshot.Snapshot](injector)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(overrides)
	registry.Register(snap)

	// Publish the first view before accepting queries so reads never
	// observe an empty snapshot.
	if err := snap.Refresh(ctx); err != nil {
		return fmt.Errorf("initial override snapshot: %w", err)
	}

	logger.Info("service starting",
		slog.String("profile", profile),
		slog.String("store", cfg.Store.Driver),
		slog.Bool("admin", cfg.Admin.Enabled),
		slog.Duration("refresh_interval", snap.Interval()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Run(gctx) })
	g.Go(func() error { return snap.Run(gctx) })

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("service failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.Catalog, error) {
		c, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		logger.Info("catalog loaded", slog.Int("options", c.Len()))
		return c, nil
	})

	do.Provide(injector, func(_ do.Injector) (store.Store, error) {
		return store.Open(ctx, &cfg.Store)
	})

	do.Provide(injector, func(i do.Injector) (*snapshot.Snapshot, error) {
		st := do.MustInvoke[store.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return snapshot.New(st, snapshot.Options{
			Source:   cfg.Store.Source,
			Interval: cfg.Store.RefreshInterval,
			Metrics:  metrics,
			Logger:   logger,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ConfigService, error) {
		cat := do.MustInvoke[ports.Catalog](i)
		snap := do.MustInvoke[*snapshot.Snapshot](i)
		return app.NewConfigService(cat, snap, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AdminService, error) {
		cat := do.MustInvoke[ports.Catalog](i)
		st := do.MustInvoke[store.Store](i)
		return app.NewAdminService(cat, st, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ClusterConfHandler, error) {
		svc := do.MustInvoke[ports.ConfigService](i)
		return handlers.NewClusterConfHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AdminHandler, error) {
		svc := do.MustInvoke[ports.AdminService](i)
		return handlers.NewAdminHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		confH := do.MustInvoke[*handlers.ClusterConfHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		var adminH *handlers.AdminHandler
		if cfg.Admin.Enabled {
			adminH = do.MustInvoke[*handlers.AdminHandler](i)
		}

		return adapthttp.NewRouter(confH, adminH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
