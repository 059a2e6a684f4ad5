package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/search/hit"
	"github.com/kailas-cloud/multisearch/internal/domain/search/query"
	"github.com/kailas-cloud/multisearch/internal/logger"
	"github.com/kailas-cloud/multisearch/internal/metrics"
)

// fanout runs every spec concurrently and returns pages aligned with specs.
// The first failure cancels the rest and fails the whole batch.
func (s *Service) fanout(ctx context.Context, specs []query.Spec) ([]hit.Page, error) {
	pages := make([]hit.Page, len(specs))
	g, gCtx := errgroup.WithContext(ctx)

	for i, spec := range specs {
		g.Go(func() error {
			start := time.Now()
			page, err := s.engine.Search(gCtx, spec)
			status := "ok"
			if err != nil {
				status = "error"
			}
			metrics.EngineQueryDuration.WithLabelValues(spec.Collection, status).
				Observe(time.Since(start).Seconds())

			if err != nil {
				logger.FromContext(ctx).Error("Engine query failed",
					zap.String("collection", spec.Collection),
					zap.String("query", spec.Text),
					zap.String("filter_by", spec.FilterBy),
					zap.Error(err),
				)
				return domain.NewEngineError(spec.Collection, err)
			}
			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
