package search

import (
	"context"

	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/record"
	"github.com/kailas-cloud/multisearch/internal/domain/search/hit"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/query"
)

// Engine runs one per-collection query.
type Engine interface {
	Search(ctx context.Context, spec query.Spec) (hit.Page, error)
}

// Records looks full records up by id. Order of the result is unspecified.
type Records interface {
	FetchByIDs(ctx context.Context, location string, ids []string) ([]record.Record, error)
}

// Catalog resolves searchable types to their descriptors.
type Catalog interface {
	Get(k kind.Kind) (collection.Descriptor, error)
}
