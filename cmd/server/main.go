// Package main is the entry point for the cake shop server. It wires the
// store, the connected quantity component and its HTTP and websocket hosts
// using samber/do v2, then serves until SIGINT/SIGTERM.
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
	"golang.org/x/text/language"

	adapthttp "github.com/jsamuelsen11/cakeshop/internal/adapters/http"
	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/cakeshop/internal/adapters/live"

	"github.com/jsamuelsen11/cakeshop/internal/app"
	"github.com/jsamuelsen11/cakeshop/internal/app/connect"
	"github.com/jsamuelsen11/cakeshop/internal/app/store"
	"github.com/jsamuelsen11/cakeshop/internal/components/quantity"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
	"github.com/jsamuelsen11/cakeshop/internal/platform/config"
	"github.com/jsamuelsen11/cakeshop/internal/platform/health"
	"github.com/jsamuelsen11/cakeshop/internal/platform/logging"
	"github.com/jsamuelsen11/cakeshop/internal/platform/telemetry"
	"github.com/jsamuelsen11/cakeshop/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	runCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()

	hubDone := make(chan struct{})
	if cfg.Live.Enabled {
		hub := do.MustInvoke[*live.Hub](injector)
		registry.Register(hub)
		server.RegisterOnShutdown(func() {
			if err := hub.Close(); err != nil {
				logger.Warn("live hub close error", slog.Any("error", err))
			}
		})
		go func() {
			defer close(hubDone)
			if err := hub.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("live hub stopped", slog.Any("error", err))
			}
		}()
	} else {
		close(hubDone)
	}

	display := do.MustInvoke[*quantity.Display](injector)
	logger.Info("store ready",
		slog.Int("quantity", do.MustInvoke[ports.ShopService](injector).State(ctx).Quantity),
		slog.Bool("live", cfg.Live.Enabled),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	stopHub()
	<-hubDone
	display.Close()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
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

	metrics, err := telemetry.NewMetrics(mp)
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

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*store.Store[cake.State, cake.Action], error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		initial := cake.State{Quantity: cfg.Store.InitialQuantity}

		return store.New(cake.Reduce, initial,
			store.WithMiddleware[cake.State](
				store.Tracing[cake.Action](),
				store.Metrics[cake.Action](metrics),
				store.Logging[cake.Action](logging.Component(logger, "store")),
				store.Validate[cake.Action](),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CakeStore, error) {
		return do.MustInvoke[*store.Store[cake.State, cake.Action]](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*quantity.Display, error) {
		st := do.MustInvoke[*store.Store[cake.State, cake.Action]](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		locale, err := language.Parse(cfg.View.Locale)
		if err != nil {
			return nil, fmt.Errorf("parsing view locale %q: %w", cfg.View.Locale, err)
		}

		return quantity.NewDisplay(st, quantity.Props{
			Locale: locale,
			Label:  cfg.View.Label,
		}, connect.MountOptions{
			Name:    quantity.Name,
			Logger:  logging.Component(logger, "component"),
			Metrics: metrics,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ShopService, error) {
		st := do.MustInvoke[ports.CakeStore](i)
		return app.NewShopService(st, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*live.Hub, error) {
		display := do.MustInvoke[*quantity.Display](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return live.NewHub(display, live.Options{
			MaxWorkers:   cfg.Live.MaxWorkers,
			WriteTimeout: cfg.Live.WriteTimeout,
			MaxClients:   cfg.Live.MaxClients,
			Logger:       logger,
			Metrics:      metrics,
		}), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		var opts []health.Option
		if cfg.Server.HealthCheckTimeout > 0 {
			opts = append(opts, health.WithCheckTimeout(cfg.Server.HealthCheckTimeout))
		}
		return health.New(opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ComponentHandler, error) {
		display := do.MustInvoke[*quantity.Display](i)

		page := handlers.PageOptions{
			Title: cfg.View.Title,
			Lang:  cfg.View.Locale,
		}
		if cfg.Live.Enabled {
			page.LiveURL = adapthttp.LivePath
		}
		return handlers.NewComponentHandler(display, page), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ShopHandler, error) {
		svc := do.MustInvoke[ports.ShopService](i)
		return handlers.NewShopHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Routes{
			Component: do.MustInvoke[*handlers.ComponentHandler](i),
			Shop:      do.MustInvoke[*handlers.ShopHandler](i),
			Health:    do.MustInvoke[*handlers.HealthHandler](i),
		}
		if cfg.Live.Enabled {
			routes.Live = do.MustInvoke[*live.Hub](i)
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routes,
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
