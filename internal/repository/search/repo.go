package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/multisearch/internal/db"
	"github.com/kailas-cloud/multisearch/internal/domain/search/hit"
	"github.com/kailas-cloud/multisearch/internal/domain/search/query"
)

// engine is the consumer interface for search operations (ISP).
type engine interface {
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo implements usecase/search.Engine.
type Repo struct {
	engine engine
}

// New creates a search repository.
func New(e engine) *Repo {
	return &Repo{engine: e}
}

// Search runs one per-collection query and returns hits in engine rank order.
func (r *Repo) Search(ctx context.Context, spec query.Spec) (hit.Page, error) {
	q := &db.Query{
		Collection:    spec.Collection,
		Text:          spec.Text,
		QueryBy:       spec.QueryBy,
		FilterBy:      spec.FilterBy,
		SortBy:        spec.SortBy,
		IncludeFields: spec.IncludeFields,
		Page:          spec.Page,
		PerPage:       spec.PerPage,
	}

	sr, err := r.engine.Search(ctx, q)
	if err != nil {
		return hit.Page{}, fmt.Errorf("search %s: %w", spec.Collection, err)
	}

	hits := make([]hit.Hit, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		hits = append(hits, hit.New(e.ID, e.Score, e.Fields))
	}
	found := sr.Found
	if found < len(hits) {
		found = len(hits)
	}
	return hit.Page{Hits: hits, Found: found}, nil
}
