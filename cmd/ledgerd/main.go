package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-ledger/internal/config"
	"personal-ledger/internal/database"
	"personal-ledger/internal/handlers"
	"personal-ledger/internal/middleware"
	"personal-ledger/internal/repositories"
	"personal-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)

	store := services.NewLedgerStore(repositories.NewSlotRepository(db.DB), cfg.Ledger.SlotKey, metrics)
	ledger := services.NewLedgerService(store, metrics)
	slog.Info("Ledger loaded", "slot", cfg.Ledger.SlotKey, "transactions", ledger.Count())

	if cfg.Ledger.SeedDemoData {
		added, err := services.NewDemoSeeder(ledger, services.NewTransactionGenerator()).SeedIfEmpty(ctx)
		if err != nil {
			return err
		}
		slog.Info("Demo data seeded", "transactions", added)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(registry).Handle
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(rateLimiter.Middleware())

	handlers.RegisterRoutes(e, handlers.Handlers{
		Transactions: handlers.NewTransactionHandler(ledger, services.NewExportService(ledger)),
		Summary:      handlers.NewSummaryHandler(ledger),
		Categories:   handlers.NewCategoryHandler(services.NewCategoryService()),
		Health:       handlers.NewHealthCheckHandler(db.DB, ledger),
		Metrics:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting ledger server", "address", cfg.Address(), "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		rateLimiter.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
