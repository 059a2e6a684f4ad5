package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/record"
	"github.com/kailas-cloud/multisearch/internal/domain/search/hit"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/mode"
	"github.com/kailas-cloud/multisearch/internal/domain/search/pagination"
	"github.com/kailas-cloud/multisearch/internal/domain/search/query"
	"github.com/kailas-cloud/multisearch/internal/domain/search/request"
	"github.com/kailas-cloud/multisearch/internal/domain/search/result"
	"github.com/kailas-cloud/multisearch/internal/logger"
	"github.com/kailas-cloud/multisearch/internal/metrics"
)

// Config holds page-size limits and per-mode defaults.
type Config struct {
	MaxPerPage         int
	BestResultsPerType int
	AllResultsPerType  int
}

// DefaultConfig returns the built-in limits.
func DefaultConfig() Config {
	return Config{
		MaxPerPage:         100,
		BestResultsPerType: 3,
		AllResultsPerType:  10,
	}
}

// Service fans searches out to the engine and hydrates hits from the store.
type Service struct {
	engine  Engine
	records Records
	catalog Catalog
	cfg     Config
}

// New creates a search service.
func New(engine Engine, records Records, catalog Catalog, cfg Config) *Service {
	return &Service{engine: engine, records: records, catalog: catalog, cfg: cfg}
}

// Search runs a single-collection search and returns hydrated records in
// engine rank order.
func (s *Service) Search(ctx context.Context, req request.Request) (result.TypeResult, error) {
	d, err := s.catalog.Get(req.Kind())
	if err != nil {
		return result.TypeResult{}, fmt.Errorf("get descriptor: %w", err)
	}
	if req.PerPage() > s.cfg.MaxPerPage {
		return result.TypeResult{}, domain.InvalidRequestf("per_page must be <= %d", s.cfg.MaxPerPage)
	}

	spec, err := buildSpec(d, req)
	if err != nil {
		return result.TypeResult{}, err
	}

	pages, err := s.fanout(ctx, []query.Spec{spec})
	if err != nil {
		return result.TypeResult{}, err
	}
	page := pages[0]

	recs, err := s.hydrate(ctx, d.Location(), page.IDs())
	if err != nil {
		return result.TypeResult{}, err
	}

	return result.NewTypeResult(recs, pagination.Calculate(page.Found, req.Page(), req.PerPage())), nil
}

// SearchMulti queries every requested type on its first page, hydrates each
// type and picks the cross-type best result.
func (s *Service) SearchMulti(ctx context.Context, req request.Multi) (result.Aggregate, error) {
	perType, err := s.perType(req)
	if err != nil {
		return result.Aggregate{}, err
	}

	kinds := req.Kinds()
	descs := make([]collection.Descriptor, len(kinds))
	specs := make([]query.Spec, len(kinds))
	for i, k := range kinds {
		d, err := s.catalog.Get(k)
		if err != nil {
			return result.Aggregate{}, fmt.Errorf("get descriptor: %w", err)
		}
		descs[i] = d
		specs[i] = buildMultiSpec(d, req.Query(), req.Actor(), perType)
	}

	pages, err := s.fanout(ctx, specs)
	if err != nil {
		return result.Aggregate{}, err
	}

	hydrated, err := s.hydrateAll(ctx, descs, pages)
	if err != nil {
		return result.Aggregate{}, err
	}

	agg := result.Aggregate{Sections: make([]result.Section, len(descs))}
	for i, d := range descs {
		agg.Sections[i] = result.Section{
			Kind:   d.Kind(),
			Key:    d.Key(),
			Result: result.NewTypeResult(hydrated[i], pagination.Calculate(pages[i].Found, 1, perType)),
		}
	}
	agg.Best = s.best(ctx, descs, pages, agg.Sections)
	return agg, nil
}

func (s *Service) perType(req request.Multi) (int, error) {
	n := req.PerType()
	if n == 0 {
		switch req.Mode() {
		case mode.All:
			n = s.cfg.AllResultsPerType
		default:
			n = s.cfg.BestResultsPerType
		}
	}
	if n > s.cfg.MaxPerPage {
		return 0, domain.InvalidRequestf("per_type must be <= %d", s.cfg.MaxPerPage)
	}
	return n, nil
}

// hydrateAll hydrates every type concurrently; results align with descs.
func (s *Service) hydrateAll(
	ctx context.Context, descs []collection.Descriptor, pages []hit.Page,
) ([][]record.Record, error) {
	out := make([][]record.Record, len(descs))
	g, gCtx := errgroup.WithContext(ctx)
	for i, d := range descs {
		g.Go(func() error {
			recs, err := s.hydrate(gCtx, d.Location(), pages[i].IDs())
			if err != nil {
				return err
			}
			out[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// best fuses the rank-1 hit of each type and returns the winner's record,
// taken from its type's hydrated section.
func (s *Service) best(
	ctx context.Context, descs []collection.Descriptor, pages []hit.Page, sections []result.Section,
) *result.Best {
	cands := make([]candidate, 0, len(descs))
	index := make(map[kind.Kind]int, len(descs))
	for i, d := range descs {
		top, ok := pages[i].Top()
		if !ok {
			continue
		}
		index[d.Kind()] = i
		cands = append(cands, candidate{
			kind:       d.Kind(),
			id:         top.ID(),
			text:       top.Relevance(),
			popularity: top.Popularity(d.Popularity()),
		})
	}

	winner, ok := selectBest(cands)
	if !ok {
		return nil
	}
	rec, ok := sections[index[winner.kind]].Result.Find(winner.id)
	if !ok {
		logger.FromContext(ctx).Debug("Best result missing from store",
			zap.String("type", string(winner.kind)),
			zap.String("id", winner.id),
		)
		return nil
	}
	metrics.BestResultTotal.WithLabelValues(string(winner.kind)).Inc()
	return &result.Best{Type: winner.kind, Record: rec}
}
