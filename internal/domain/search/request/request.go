package request

import (
	"strings"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/search/filter"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/mode"
)

// MaxQueryLength is the maximum allowed search query length.
const MaxQueryLength = 512

// Range is an optional numeric bound pair on a named filter dimension.
type Range struct {
	Dimension string
	Bounds    filter.Bounds
}

// Set is a list of values on a named filter dimension.
// Used both for membership filters and for exclusion filters.
type Set struct {
	Dimension string
	Values    []string
}

// Params holds the raw fields of a single-collection search.
type Params struct {
	Query      string
	Page       int
	PerPage    int
	SortBy     string
	Ranges     []Range
	Sets       []Set
	Exclusions []Set
	Actor      string
}

// Request is a validated single-collection search.
type Request struct {
	kind kind.Kind
	p    Params
}

// New validates a single-collection search for kind k.
func New(k kind.Kind, p Params) (Request, error) {
	if !k.IsValid() {
		return Request{}, domain.InvalidRequestf("unknown type %q", k)
	}
	query, err := normalizeQuery(p.Query)
	if err != nil {
		return Request{}, err
	}
	p.Query = query
	if p.Page < 1 {
		return Request{}, domain.InvalidRequestf("page must be >= 1, got %d", p.Page)
	}
	if p.PerPage < 1 {
		return Request{}, domain.InvalidRequestf("per_page must be >= 1, got %d", p.PerPage)
	}
	for _, r := range p.Ranges {
		if r.Dimension == "" {
			return Request{}, domain.InvalidRequestf("range dimension is required")
		}
		if r.Bounds.Min != nil && r.Bounds.Max != nil && *r.Bounds.Min > *r.Bounds.Max {
			return Request{}, domain.InvalidRequestf("min_%s must not exceed max_%s", r.Dimension, r.Dimension)
		}
	}
	for _, group := range [][]Set{p.Sets, p.Exclusions} {
		for _, s := range group {
			if err := validateSet(s); err != nil {
				return Request{}, err
			}
		}
	}
	actor, err := normalizeActor(p.Actor)
	if err != nil {
		return Request{}, err
	}
	p.Actor = actor
	return Request{kind: k, p: p}, nil
}

// Kind returns the searched type.
func (r Request) Kind() kind.Kind { return r.kind }

// Query returns the trimmed free-text query (may be empty).
func (r Request) Query() string { return r.p.Query }

// Page returns the 1-based page.
func (r Request) Page() int { return r.p.Page }

// PerPage returns the page size.
func (r Request) PerPage() int { return r.p.PerPage }

// SortBy returns the caller-chosen sort field, possibly with :asc/:desc.
func (r Request) SortBy() string { return r.p.SortBy }

// Ranges returns the numeric range filters.
func (r Request) Ranges() []Range { return r.p.Ranges }

// Sets returns the membership filters.
func (r Request) Sets() []Set { return r.p.Sets }

// Exclusions returns the exclusion filters.
func (r Request) Exclusions() []Set { return r.p.Exclusions }

// Actor returns the caller id, or "" for anonymous callers.
func (r Request) Actor() string { return r.p.Actor }

// Multi is a validated multi-collection search.
type Multi struct {
	query   string
	mode    mode.Mode
	perType int
	kinds   []kind.Kind
	actor   string
}

// NewMulti validates a multi-collection search. perType 0 selects the mode
// default; an empty kinds list selects every type.
func NewMulti(query string, m mode.Mode, perType int, kinds []kind.Kind, actor string) (Multi, error) {
	query, err := normalizeQuery(query)
	if err != nil {
		return Multi{}, err
	}
	if !m.IsValid() {
		return Multi{}, domain.InvalidRequestf("invalid mode %q", m)
	}
	if perType < 0 {
		return Multi{}, domain.InvalidRequestf("per_type must be >= 1, got %d", perType)
	}
	for _, k := range kinds {
		if !k.IsValid() {
			return Multi{}, domain.InvalidRequestf("unknown type %q", k)
		}
	}
	actor, err = normalizeActor(actor)
	if err != nil {
		return Multi{}, err
	}
	if len(kinds) == 0 {
		kinds = kind.All()
	} else {
		kinds = kind.Sort(append([]kind.Kind(nil), kinds...))
	}
	return Multi{
		query:   query,
		mode:    m,
		perType: perType,
		kinds:   kinds,
		actor:   actor,
	}, nil
}

// Query returns the trimmed free-text query (may be empty).
func (m Multi) Query() string { return m.query }

// Mode returns the multi-collection mode.
func (m Multi) Mode() mode.Mode { return m.mode }

// PerType returns the requested results-per-type, or 0 for the mode default.
func (m Multi) PerType() int { return m.perType }

// Kinds returns the queried types in precedence order.
func (m Multi) Kinds() []kind.Kind { return m.kinds }

// Actor returns the caller id, or "" for anonymous callers.
func (m Multi) Actor() string { return m.actor }

func normalizeQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if len(q) > MaxQueryLength {
		return "", domain.InvalidRequestf("query too long (max %d chars)", MaxQueryLength)
	}
	return q, nil
}

func validateSet(s Set) error {
	if s.Dimension == "" {
		return domain.InvalidRequestf("filter dimension is required")
	}
	if len(s.Values) > filter.MaxValues {
		return domain.InvalidRequestf("too many %s values (max %d)", s.Dimension, filter.MaxValues)
	}
	for _, v := range s.Values {
		if strings.TrimSpace(v) == "" {
			return domain.InvalidRequestf("empty value in %s", s.Dimension)
		}
		if !filter.Quotable(v) {
			return domain.InvalidRequestf("backtick not allowed in %s value %q", s.Dimension, v)
		}
	}
	return nil
}

func normalizeActor(actor string) (string, error) {
	actor = strings.TrimSpace(actor)
	if !filter.Quotable(actor) {
		return "", domain.InvalidRequestf("backtick not allowed in actor id")
	}
	return actor, nil
}
