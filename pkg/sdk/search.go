package multisearch

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/kailas-cloud/multisearch/internal/domain/search/filter"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/mode"
	"github.com/kailas-cloud/multisearch/internal/domain/search/request"
	"github.com/kailas-cloud/multisearch/internal/domain/search/result"
)

const defaultPerPage = 20

type searchUseCase interface {
	Search(ctx context.Context, req request.Request) (result.TypeResult, error)
	SearchMulti(ctx context.Context, req request.Multi) (result.Aggregate, error)
}

// Search runs a paginated search over one type and returns the hydrated
// records in engine order.
func (c *Client) Search(ctx context.Context, t Type, p Params) (res Result, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("search", start, err, slog.String("type", string(t)), slog.String("query", p.Query))
	}()

	req, err := request.New(kind.Kind(t), toRequestParams(p))
	if err != nil {
		return Result{}, fmt.Errorf("search %s: %w", t, err)
	}
	tr, err := c.searchSvc.Search(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("search %s: %w", t, err)
	}
	return fromTypeResult(tr), nil
}

// SearchAll returns the first page of every requested type plus the best result.
func (c *Client) SearchAll(ctx context.Context, query string, opts MultiOptions) (Aggregate, error) {
	return c.multi(ctx, "search_all", mode.All, query, opts)
}

// BestResults returns a short preview of every requested type plus the best result.
func (c *Client) BestResults(ctx context.Context, query string, opts MultiOptions) (Aggregate, error) {
	return c.multi(ctx, "best_results", mode.BestResults, query, opts)
}

func (c *Client) multi(
	ctx context.Context, op string, m mode.Mode, query string, opts MultiOptions,
) (agg Aggregate, err error) {
	start := time.Now()
	defer func() { c.obs.observe(op, start, err, slog.String("query", query)) }()

	kinds := make([]kind.Kind, len(opts.Types))
	for i, t := range opts.Types {
		kinds[i] = kind.Kind(t)
	}
	req, err := request.NewMulti(query, m, opts.PerType, kinds, opts.Actor)
	if err != nil {
		return Aggregate{}, fmt.Errorf("%s: %w", op, err)
	}
	a, err := c.searchSvc.SearchMulti(ctx, req)
	if err != nil {
		return Aggregate{}, fmt.Errorf("%s: %w", op, err)
	}
	return fromAggregate(a), nil
}

// toRequestParams applies paging defaults and flattens filter maps in
// dimension order so the engine filter is deterministic.
func toRequestParams(p Params) request.Params {
	out := request.Params{
		Query:   p.Query,
		Page:    p.Page,
		PerPage: p.PerPage,
		SortBy:  p.SortBy,
		Actor:   p.Actor,
	}
	if out.Page == 0 {
		out.Page = 1
	}
	if out.PerPage == 0 {
		out.PerPage = defaultPerPage
	}
	for _, dim := range sortedKeys(p.Ranges) {
		r := p.Ranges[dim]
		out.Ranges = append(out.Ranges, request.Range{
			Dimension: dim,
			Bounds:    filter.Bounds{Min: r.Min, Max: r.Max},
		})
	}
	for _, dim := range sortedKeys(p.Sets) {
		out.Sets = append(out.Sets, request.Set{Dimension: dim, Values: p.Sets[dim]})
	}
	for _, dim := range sortedKeys(p.Exclusions) {
		out.Exclusions = append(out.Exclusions, request.Set{Dimension: dim, Values: p.Exclusions[dim]})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
