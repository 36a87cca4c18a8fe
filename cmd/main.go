package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/compass/internal/config"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/occupancy"
	"github.com/UnknownOlympus/compass/internal/planner"
	"github.com/UnknownOlympus/compass/internal/repository"
	"github.com/UnknownOlympus/compass/internal/routing"
	"github.com/UnknownOlympus/compass/internal/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	if err := run(ctx, stop, cfg, logger); err != nil {
		logger.ErrorContext(ctx, "Application failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run wires the service and blocks until ctx is canceled. Resources it opens are
// released before it returns, including on startup errors.
func run(ctx context.Context, stop context.CancelFunc, cfg *config.Config, logger *slog.Logger) error {
	// Create a separate registry for metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize the database connection.
	dtb, err := repository.NewDatabase(
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)
	if err = repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare DB schema: %w", err)
	}
	if cfg.Database.Seed {
		if err = repo.SeedFacilities(ctx, repository.DefaultFacilities); err != nil {
			return fmt.Errorf("failed to seed facilities: %w", err)
		}
	}

	// Create the routing provider selected by configuration.
	routeProvider, err := routing.NewProvider(routing.ProviderConfig{
		Type:      routing.ProviderType(cfg.Provider.Type),
		APIKey:    cfg.Provider.APIKey,
		BaseURL:   cfg.Provider.BaseURL,
		RateLimit: cfg.Provider.RateLimit,
		Timeout:   cfg.Provider.Timeout,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create routing provider: %w", err)
	}

	logger.InfoContext(ctx, "Routing provider initialized", "type", cfg.Provider.Type)

	resolver := planner.NewResolver(
		logger,
		routeProvider,
		cfg.Provider.Type, // Provider name for metrics
		appMetrics,
		cfg.Provider.Timeout,
		cfg.FallbackResolution,
	)

	seed := cfg.Occupancy.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	monitor := occupancy.NewMonitor(
		logger, repo, occupancy.NewSimulatedSensor(seed), appMetrics, cfg.Occupancy.Interval,
	)
	go monitor.Run(ctx)

	router := transport.NewRouter(transport.Deps{
		Log:         logger,
		Planner:     resolver,
		Store:       repo,
		Occupancy:   monitor,
		DB:          dtb,
		Registry:    reg,
		Metrics:     appMetrics,
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		logger.InfoContext(ctx, "Starting HTTP server", "port", cfg.Port)
		if errServe := server.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "HTTP server failed", "error", errServe)
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "Failed to shut down HTTP server", "error", err)
	}

	logger.InfoContext(shutdownCtx, "Application stopped gracefully.")

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
