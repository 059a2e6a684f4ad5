package multisearch

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Record store drivers.
const (
	driverValkey   = "valkey"
	driverRedis    = "redis"
	driverPostgres = "postgres"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	engineURL    string
	engineAPIKey string

	driver    string
	addrs     []string
	password  string
	dsn       string
	keyPrefix string

	locations map[Type]string

	maxPerPage         int
	bestResultsPerType int
	allResultsPerType  int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithEngine sets the search engine base URL and API key.
func WithEngine(url, apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.engineURL = url
		c.engineAPIKey = apiKey
	})
}

// WithValkey reads records from a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis reads records from a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithPostgres reads records from PostgreSQL tables.
func WithPostgres(dsn string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverPostgres
		c.dsn = dsn
	})
}

// WithKeyPrefix prepends prefix to every Valkey/Redis record key.
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithLocation overrides where records of type t live in the store
// (a key namespace for Valkey/Redis, a table for PostgreSQL).
func WithLocation(t Type, location string) Option {
	return optionFunc(func(c *clientConfig) {
		if c.locations == nil {
			c.locations = make(map[Type]string)
		}
		c.locations[t] = location
	})
}

// WithLimits sets the per_page ceiling and the per-type defaults of the
// best-results and all modes. Zero keeps the default (100, 3, 10).
func WithLimits(maxPerPage, bestResultsPerType, allResultsPerType int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxPerPage = maxPerPage
		c.bestResultsPerType = bestResultsPerType
		c.allResultsPerType = allResultsPerType
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
