package search

import (
	"strings"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/collection/field"
	"github.com/kailas-cloud/multisearch/internal/domain/search/filter"
	"github.com/kailas-cloud/multisearch/internal/domain/search/query"
	"github.com/kailas-cloud/multisearch/internal/domain/search/request"
)

// textMatchSort ranks by bucketed engine relevance before the secondary field.
const textMatchSort = "_text_match(buckets: 10):desc"

const (
	sortAsc  = "asc"
	sortDesc = "desc"
)

// buildSpec turns a single-collection request into an engine query.
func buildSpec(d collection.Descriptor, req request.Request) (query.Spec, error) {
	sortBy, err := buildSort(d, req.SortBy())
	if err != nil {
		return query.Spec{}, err
	}
	expr, err := buildFilter(d, req)
	if err != nil {
		return query.Spec{}, err
	}
	return query.Spec{
		Collection:    d.Name(),
		Text:          req.Query(),
		QueryBy:       d.QueryBy(),
		FilterBy:      expr.String(),
		SortBy:        sortBy,
		IncludeFields: d.IncludeFields(),
		Page:          req.Page(),
		PerPage:       req.PerPage(),
	}, nil
}

// buildMultiSpec builds the first-page query for one type of a multi search.
// Only the permission filter applies and the sort is fixed.
func buildMultiSpec(d collection.Descriptor, text, actor string, perType int) query.Spec {
	return query.Spec{
		Collection:    d.Name(),
		Text:          text,
		QueryBy:       d.QueryBy(),
		FilterBy:      filter.Expression{}.And(d.Visibility(actor)).String(),
		SortBy:        textMatchSort + "," + d.SecondarySort() + ":" + sortDesc,
		IncludeFields: d.IncludeFields(),
		Page:          1,
		PerPage:       perType,
	}
}

// buildFilter resolves the request's dimensions against d and ANDs them with
// the permission term.
func buildFilter(d collection.Descriptor, req request.Request) (filter.Expression, error) {
	var expr filter.Expression

	for _, r := range req.Ranges() {
		target, err := resolve(d, r.Dimension, field.Range)
		if err != nil {
			return filter.Expression{}, err
		}
		expr = expr.And(filter.Range(target, r.Bounds))
	}
	for _, s := range req.Sets() {
		target, err := resolve(d, s.Dimension, field.Set)
		if err != nil {
			return filter.Expression{}, err
		}
		expr = expr.And(filter.In(target, s.Values))
	}
	for _, s := range req.Exclusions() {
		target, err := resolve(d, s.Dimension, field.Exclusion)
		if err != nil {
			return filter.Expression{}, err
		}
		expr = expr.And(filter.NotEqual(target, s.Values))
	}

	return expr.And(d.Visibility(req.Actor())), nil
}

func resolve(d collection.Descriptor, dimension string, want field.Type) (string, error) {
	f, ok := d.FieldByName(dimension)
	if !ok {
		return "", domain.InvalidRequestf("unknown filter %q for %s", dimension, d.Kind())
	}
	if f.FieldType() != want {
		return "", domain.InvalidRequestf("filter %q is a %s filter, not %s", dimension, f.FieldType(), want)
	}
	return f.Target(), nil
}

// buildSort renders the sort expression. sortBy is "field" or
// "field:asc|desc"; empty selects the descriptor's secondary field.
func buildSort(d collection.Descriptor, sortBy string) (string, error) {
	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		return textMatchSort + "," + d.SecondarySort() + ":" + sortDesc, nil
	}

	name, dir, hasDir := strings.Cut(sortBy, ":")
	if !hasDir {
		dir = sortDesc
	}
	dir = strings.ToLower(dir)
	if dir != sortAsc && dir != sortDesc {
		return "", domain.InvalidRequestf("invalid sort direction %q", dir)
	}
	if !d.AllowsSort(name) {
		return "", domain.InvalidRequestf("sort_by %q is not allowed for %s", name, d.Kind())
	}
	return textMatchSort + "," + name + ":" + dir, nil
}
