package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/huddle/internal/config"
	"github.com/kailas-cloud/huddle/internal/db"
	"github.com/kailas-cloud/huddle/internal/db/memory"
	dbValkey "github.com/kailas-cloud/huddle/internal/db/valkey"
	logpkg "github.com/kailas-cloud/huddle/internal/logger"
	"github.com/kailas-cloud/huddle/internal/metrics"
	"github.com/kailas-cloud/huddle/internal/repository/catalog"
	"github.com/kailas-cloud/huddle/internal/repository/seed"
	chiTransport "github.com/kailas-cloud/huddle/internal/transport/chi"
	healthuc "github.com/kailas-cloud/huddle/internal/usecase/health"
	"github.com/kailas-cloud/huddle/internal/usecase/mapview"
	searchuc "github.com/kailas-cloud/huddle/internal/usecase/search"
	"github.com/kailas-cloud/huddle/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting huddle API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := openStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	repo := catalog.New(store, cfg.Storage.KeyPrefix)
	if cfg.Seed.Skip {
		logger.Info("Seeding skipped")
	} else {
		n, err := loadSeed(ctx, repo, cfg.Seed.Path)
		if err != nil {
			logger.Fatal("Failed to seed catalog", zap.String("path", cfg.Seed.Path), zap.Error(err))
		}
		logger.Info("Catalog seeded", zap.String("path", cfg.Seed.Path), zap.Int("entities", n))
	}

	metrics.RegisterViewMetrics()

	server := chiTransport.NewServer(
		repo,
		searchuc.New(repo),
		mapview.New(repo),
		healthuc.New(store, repo),
		logger,
	)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger),
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func openStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewStore(), nil
	case config.DriverValkey:
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("valkey: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func loadSeed(ctx context.Context, w seed.Writer, path string) (int, error) {
	entities, err := seed.Load(path)
	if err != nil {
		return 0, err
	}
	if err := seed.Apply(ctx, w, entities); err != nil {
		return 0, err
	}
	return len(entities), nil
}
