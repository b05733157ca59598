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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pfortier/BistroCore_Go/internal/config"
	"github.com/pfortier/BistroCore_Go/internal/database"
	"github.com/pfortier/BistroCore_Go/internal/database/memory"
	"github.com/pfortier/BistroCore_Go/internal/database/postgres"
	"github.com/pfortier/BistroCore_Go/internal/handler"
	"github.com/pfortier/BistroCore_Go/internal/repository"
	"github.com/pfortier/BistroCore_Go/internal/resolver"
	"github.com/pfortier/BistroCore_Go/internal/server"
)

// Connection pool tuning and shutdown grace period
const (
	dbMaxConns      = 10
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	var (
		pool         *pgxpool.Pool
		mappingStore repository.Mapping
	)
	if cfg.StoreBackend == config.StoreBackendPostgres {
		pool, err = database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		mappingStore = postgres.NewMappingRepository(pool)
	} else {
		slog.Warn("Using in-memory mapping store, data will not survive restarts")
		mappingStore = memory.NewMappingStore(nil)
	}

	resolverService := resolver.NewService(mappingStore)

	// A nil interface keeps /readyz backend-agnostic for the memory store
	var dbPool database.Pool
	if pool != nil {
		dbPool = pool
	}
	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, resolverService)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}
