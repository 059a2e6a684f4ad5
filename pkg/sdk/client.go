package multisearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/multisearch/internal/db"
	"github.com/kailas-cloud/multisearch/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/multisearch/internal/db/redis"
	"github.com/kailas-cloud/multisearch/internal/db/typesense"
	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	recordrepo "github.com/kailas-cloud/multisearch/internal/repository/record"
	searchrepo "github.com/kailas-cloud/multisearch/internal/repository/search"
	healthuc "github.com/kailas-cloud/multisearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/multisearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the multisearch SDK entry point.
type Client struct {
	engine    db.Engine
	store     db.RecordStore
	searchSvc searchUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client, connects to the record store and waits for it.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.engineURL == "" {
		return nil, errors.New("multisearch: engine url required (use WithEngine)")
	}
	if cfg.driver == "" {
		return nil, errors.New("multisearch: record store required (use WithValkey, WithRedis or WithPostgres)")
	}

	engine, err := typesense.New(typesense.Config{URL: cfg.engineURL, APIKey: cfg.engineAPIKey})
	if err != nil {
		return nil, fmt.Errorf("multisearch: create engine client: %w", err)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("multisearch: record store not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	c, err := wireClient(engine, store, cfg, obs)
	if err != nil {
		store.Close()
		return nil, err
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.RecordStore, error) {
	switch cfg.driver {
	case driverValkey, driverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.addrs,
			Password:  cfg.password,
			KeyPrefix: cfg.keyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("multisearch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	case driverPostgres:
		s, err := postgres.NewStore(cfg.dsn)
		if err != nil {
			return nil, fmt.Errorf("multisearch: create postgres store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("multisearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(engine db.Engine, store db.RecordStore, cfg *clientConfig, obs *observer) (*Client, error) {
	overrides := make(map[kind.Kind]string, len(cfg.locations))
	for t, loc := range cfg.locations {
		overrides[kind.Kind(t)] = loc
	}
	catalog, err := collection.DefaultCatalog().WithLocations(overrides)
	if err != nil {
		return nil, fmt.Errorf("multisearch: locations: %w", err)
	}

	scfg := searchuc.DefaultConfig()
	if cfg.maxPerPage > 0 {
		scfg.MaxPerPage = cfg.maxPerPage
	}
	if cfg.bestResultsPerType > 0 {
		scfg.BestResultsPerType = cfg.bestResultsPerType
	}
	if cfg.allResultsPerType > 0 {
		scfg.AllResultsPerType = cfg.allResultsPerType
	}

	return &Client{
		engine:    engine,
		store:     store,
		searchSvc: searchuc.New(searchrepo.New(engine), recordrepo.New(store), catalog, scfg),
		healthSvc: healthuc.New(engine, store),
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks engine and record store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.engine.Ping(ctx); err != nil {
		return fmt.Errorf("ping engine: %w", err)
	}
	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}
