package chi

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/collection/field"
	"github.com/kailas-cloud/multisearch/internal/domain/search/filter"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/request"
)

// Query parameter names.
const (
	paramQuery   = "q"
	paramPage    = "page"
	paramPerPage = "per_page"
	paramSortBy  = "sort_by"
	paramPerType = "per_type"
	paramTypes   = "types"

	prefixMin     = "min_"
	prefixMax     = "max_"
	prefixExclude = "exclude_"
)

// singleParams parses a single-collection search for d. Filter parameters
// follow d's declared dimensions: min_<dim>/max_<dim> for ranges, <dim> for
// sets and exclude_<dim> for exclusions, lists being comma-separated.
func singleParams(q url.Values, d collection.Descriptor, defaultPerPage int) (request.Params, error) {
	page, err := intParam(q, paramPage, 1)
	if err != nil {
		return request.Params{}, err
	}
	perPage, err := intParam(q, paramPerPage, defaultPerPage)
	if err != nil {
		return request.Params{}, err
	}

	p := request.Params{
		Query:   q.Get(paramQuery),
		Page:    page,
		PerPage: perPage,
		SortBy:  q.Get(paramSortBy),
	}

	for _, f := range d.Fields() {
		switch f.FieldType() {
		case field.Range:
			b, err := boundsParam(q, f.Name())
			if err != nil {
				return request.Params{}, err
			}
			if !b.IsEmpty() {
				p.Ranges = append(p.Ranges, request.Range{Dimension: f.Name(), Bounds: b})
			}
		case field.Set:
			if vals := listParam(q, f.Name()); len(vals) > 0 {
				p.Sets = append(p.Sets, request.Set{Dimension: f.Name(), Values: vals})
			}
		case field.Exclusion:
			if vals := listParam(q, prefixExclude+f.Name()); len(vals) > 0 {
				p.Exclusions = append(p.Exclusions, request.Set{Dimension: f.Name(), Values: vals})
			}
		}
	}
	return p, nil
}

// multiParams parses per_type and types. per_type 0 means the mode default.
func multiParams(q url.Values) (perType int, kinds []kind.Kind, err error) {
	perType, err = intParam(q, paramPerType, 0)
	if err != nil {
		return 0, nil, err
	}
	if q.Has(paramPerType) && perType < 1 {
		return 0, nil, domain.InvalidRequestf("%s must be >= 1", paramPerType)
	}
	for _, t := range listParam(q, paramTypes) {
		k := kind.Kind(t)
		if !k.IsValid() {
			return 0, nil, domain.InvalidRequestf("unknown type %q", t)
		}
		kinds = append(kinds, k)
	}
	return perType, kinds, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidRequestf("%s must be an integer", name)
	}
	return n, nil
}

func boundsParam(q url.Values, dim string) (filter.Bounds, error) {
	var b filter.Bounds
	var err error
	if b.Min, err = floatParam(q, prefixMin+dim); err != nil {
		return filter.Bounds{}, err
	}
	if b.Max, err = floatParam(q, prefixMax+dim); err != nil {
		return filter.Bounds{}, err
	}
	return b, nil
}

func floatParam(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, domain.InvalidRequestf("%s must be a number", name)
	}
	return &f, nil
}

// listParam splits a comma-separated parameter, dropping blank items.
func listParam(q url.Values, name string) []string {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
