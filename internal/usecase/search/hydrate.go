package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/record"
	"github.com/kailas-cloud/multisearch/internal/logger"
	"github.com/kailas-cloud/multisearch/internal/metrics"
)

// hydrate loads the records for ids from location and returns them in ids
// order. Ids with no record are dropped. Empty ids skip the store.
func (s *Service) hydrate(ctx context.Context, location string, ids []string) ([]record.Record, error) {
	if len(ids) == 0 {
		return []record.Record{}, nil
	}

	recs, err := s.records.FetchByIDs(ctx, location, ids)
	if err != nil {
		logger.FromContext(ctx).Error("Record lookup failed",
			zap.String("location", location),
			zap.Int("ids", len(ids)),
			zap.Error(err),
		)
		return nil, domain.NewStoreError(location, err)
	}

	ordered := reorder(ids, recs)
	if dropped := len(ids) - len(ordered); dropped > 0 {
		metrics.HydrationDroppedTotal.WithLabelValues(location).Add(float64(dropped))
		logger.FromContext(ctx).Debug("Engine ids missing from store",
			zap.String("location", location),
			zap.Int("dropped", dropped),
		)
	}
	return ordered, nil
}

// reorder arranges recs to follow ids. Records whose id is not in ids are
// ignored, and each id yields at most one record.
func reorder(ids []string, recs []record.Record) []record.Record {
	byID := make(map[string]record.Record, len(recs))
	for _, r := range recs {
		id := r.ID()
		if _, dup := byID[id]; id == "" || dup {
			continue
		}
		byID[id] = r
	}

	out := make([]record.Record, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
			delete(byID, id)
		}
	}
	return out
}
