package record

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/multisearch/internal/domain/record"
)

// store is the consumer interface for record lookups (ISP).
type store interface {
	FetchByIDs(ctx context.Context, location string, ids []string) ([][]byte, error)
}

// Repo implements usecase/search.Records.
type Repo struct {
	store store
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// FetchByIDs returns the records of location whose id is in ids, in store order.
func (r *Repo) FetchByIDs(ctx context.Context, location string, ids []string) ([]record.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raws, err := r.store.FetchByIDs(ctx, location, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}

	out := make([]record.Record, 0, len(raws))
	for _, raw := range raws {
		rec, err := record.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s record: %w", location, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
