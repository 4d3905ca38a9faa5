package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/chris/kudos-ledger/pkg/api"
	"github.com/chris/kudos-ledger/pkg/config"
	"github.com/chris/kudos-ledger/pkg/handlers"
	"github.com/chris/kudos-ledger/pkg/handlers/allocations"
	"github.com/chris/kudos-ledger/pkg/handlers/claims"
	"github.com/chris/kudos-ledger/pkg/handlers/transactions"
	"github.com/chris/kudos-ledger/pkg/handlers/wallets"
	appmiddleware "github.com/chris/kudos-ledger/pkg/middleware"
	"github.com/chris/kudos-ledger/pkg/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := service.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialise services", slog.Any("error", err))
		os.Exit(1)
	}

	// Create our handler
	handler := handlers.NewApiHandler(
		wallets.NewWalletsHandler(svc.Store, svc.Ledger),
		transactions.NewTransactionsHandler(svc.Store),
		claims.NewClaimsHandler(svc.Claims),
		allocations.NewAllocationsHandler(svc.Allocation, svc.Scheduler),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appmiddleware.NewStructuredLogger(logger))
	router.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))
	}
	router.Handle("/metrics", promhttp.Handler())

	// Use the generated function to mount our handler on the router
	api.HandlerFromMux(handler, router)

	if cfg.AllocationSchedulerEnabled {
		ticker := allocation.NewTicker(svc.Allocation, logger)
		ticker.Interval = cfg.AllocationTickInterval
		ticker.Start()
		defer ticker.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("port", cfg.HTTPPort), slog.String("backend", cfg.StorageBackend))
		errs <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
		}
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
		}
	}
}
