package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/multisearch/internal/config"
	"github.com/kailas-cloud/multisearch/internal/db"
	"github.com/kailas-cloud/multisearch/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/multisearch/internal/db/redis"
	"github.com/kailas-cloud/multisearch/internal/db/typesense"
	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	logpkg "github.com/kailas-cloud/multisearch/internal/logger"
	"github.com/kailas-cloud/multisearch/internal/metrics"
	recordrepo "github.com/kailas-cloud/multisearch/internal/repository/record"
	searchrepo "github.com/kailas-cloud/multisearch/internal/repository/search"
	chiTransport "github.com/kailas-cloud/multisearch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/multisearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/multisearch/internal/usecase/search"
	"github.com/kailas-cloud/multisearch/internal/version"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting multisearch API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("engine_url", cfg.Engine.URL),
		zap.String("db_driver", cfg.Database.Driver),
	)

	metrics.RegisterHTTPMetrics()
	metrics.RegisterSearchMetrics()

	engine, err := typesense.New(typesense.Config{
		URL:     cfg.Engine.URL,
		APIKey:  cfg.Engine.APIKey,
		Timeout: time.Duration(cfg.Engine.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		logger.Fatal("Failed to create engine client", zap.Error(err))
	}

	store, err := newRecordStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create record store", zap.Error(err))
	}
	defer store.Close()

	// Wait for the record store to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Record store not ready", zap.Error(err))
	}
	logger.Info("Connected to record store")

	catalog, err := buildCatalog(cfg.Search.Locations)
	if err != nil {
		logger.Fatal("Invalid search locations", zap.Error(err))
	}

	searchSvc := searchuc.New(
		searchrepo.New(engine),
		recordrepo.New(store),
		catalog,
		searchuc.Config{
			MaxPerPage:         cfg.Search.MaxPerPage,
			BestResultsPerType: cfg.Search.BestResultsPerType,
			AllResultsPerType:  cfg.Search.AllResultsPerType,
		},
	)
	healthSvc := healthuc.New(engine, store)

	server := chiTransport.NewServer(searchSvc, healthSvc, catalog, cfg.Search.DefaultPerPage, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.ActorMiddleware([]byte(cfg.Auth.JWTSecret)))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// newRecordStore picks the record store implementation by driver.
// A failed constructor yields a nil interface, not a typed nil pointer.
func newRecordStore(cfg config.DatabaseConfig) (db.RecordStore, error) {
	switch cfg.Driver {
	case config.DriverRedis, config.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.Addrs,
			Username:  cfg.Username,
			Password:  cfg.Password,
			DB:        cfg.DB,
			KeyPrefix: cfg.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("%s store: %w", cfg.Driver, err)
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.NewStore(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("postgres store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// buildCatalog applies configured store locations to the built-in catalog.
func buildCatalog(locations map[string]string) (*collection.Catalog, error) {
	overrides := make(map[kind.Kind]string, len(locations))
	for k, loc := range locations {
		overrides[kind.Kind(k)] = loc
	}
	return collection.DefaultCatalog().WithLocations(overrides)
}
