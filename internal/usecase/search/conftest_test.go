package search

import (
	"context"
	"sync"

	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/record"
	"github.com/kailas-cloud/multisearch/internal/domain/search/hit"
	"github.com/kailas-cloud/multisearch/internal/domain/search/query"
)

// --- Mocks ---

type mockEngine struct {
	mu       sync.Mutex
	specs    []query.Spec
	searchFn func(ctx context.Context, spec query.Spec) (hit.Page, error)
}

func (m *mockEngine) Search(ctx context.Context, spec query.Spec) (hit.Page, error) {
	m.mu.Lock()
	m.specs = append(m.specs, spec)
	m.mu.Unlock()
	if m.searchFn != nil {
		return m.searchFn(ctx, spec)
	}
	return hit.Page{}, nil
}

// spec returns the captured spec for collection.
func (m *mockEngine) spec(collection string) (query.Spec, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.specs {
		if s.Collection == collection {
			return s, true
		}
	}
	return query.Spec{}, false
}

type mockRecords struct {
	mu        sync.Mutex
	locations []string
	fetchFn   func(ctx context.Context, location string, ids []string) ([]record.Record, error)
}

func (m *mockRecords) FetchByIDs(ctx context.Context, location string, ids []string) ([]record.Record, error) {
	m.mu.Lock()
	m.locations = append(m.locations, location)
	m.mu.Unlock()
	if m.fetchFn != nil {
		return m.fetchFn(ctx, location, ids)
	}
	return echoRecords(ids), nil
}

func (m *mockRecords) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locations)
}

// --- Helpers ---

func newTestService(e *mockEngine, r *mockRecords) *Service {
	return New(e, r, collection.DefaultCatalog(), DefaultConfig())
}

// echoRecords returns one {"id": id} record per id, in reverse order.
func echoRecords(ids []string) []record.Record {
	out := make([]record.Record, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, record.Record{"id": ids[i]})
	}
	return out
}

func page(found int, hits ...hit.Hit) hit.Page {
	return hit.Page{Hits: hits, Found: found}
}

func ptr(f float64) *float64 { return &f }

func recordIDs(recs []record.Record) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID()
	}
	return ids
}
