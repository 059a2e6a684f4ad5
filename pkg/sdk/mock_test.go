package multisearch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kailas-cloud/multisearch/internal/db"
)

// --- db.Engine fake ---

type fakeEngine struct {
	mu      sync.Mutex
	results map[string]*db.SearchResult // collection -> result
	fail    map[string]error
	pingErr error
	queries []db.Query
}

func (e *fakeEngine) Ping(context.Context) error { return e.pingErr }

func (e *fakeEngine) Search(_ context.Context, q *db.Query) (*db.SearchResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queries = append(e.queries, *q)
	if err := e.fail[q.Collection]; err != nil {
		return nil, err
	}
	if r, ok := e.results[q.Collection]; ok {
		return r, nil
	}
	return &db.SearchResult{}, nil
}

func (e *fakeEngine) query(collection string) (db.Query, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, q := range e.queries {
		if q.Collection == collection {
			return q, true
		}
	}
	return db.Query{}, false
}

// --- db.RecordStore fake ---

type fakeStore struct {
	mu        sync.Mutex
	records   map[string]map[string]string // location -> id -> JSON
	pingErr   error
	fetchErr  error
	locations []string
	closed    bool
}

func (s *fakeStore) Ping(context.Context) error { return s.pingErr }

func (s *fakeStore) Close() { s.closed = true }

func (s *fakeStore) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return db.WaitForReady(ctx, s, timeout)
}

func (s *fakeStore) FetchByIDs(_ context.Context, location string, ids []string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append(s.locations, location)
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	var out [][]byte
	// reverse order: callers must not rely on store ordering
	for i := len(ids) - 1; i >= 0; i-- {
		if doc, ok := s.records[location][ids[i]]; ok {
			out = append(out, []byte(doc))
		}
	}
	return out, nil
}

// --- helpers ---

func entry(id string, score float64, fields map[string]float64) db.SearchEntry {
	return db.SearchEntry{ID: id, Score: score, Fields: fields}
}

func testClient(t *testing.T, engine *fakeEngine, store *fakeStore, opts ...Option) *Client {
	t.Helper()
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	c, err := wireClient(engine, store, cfg, nil)
	if err != nil {
		t.Fatalf("wireClient: %v", err)
	}
	return c
}

func ptr(f float64) *float64 { return &f }
