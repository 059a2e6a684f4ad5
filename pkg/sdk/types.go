package multisearch

import (
	"github.com/kailas-cloud/multisearch/internal/domain/record"
	"github.com/kailas-cloud/multisearch/internal/domain/search/result"
)

// Type names a searchable collection.
type Type string

// Searchable types, in tie-break precedence order.
const (
	Movie    Type = "movie"
	TVSeries Type = "tv_series"
	Person   Type = "person"
	User     Type = "user"
	Playlist Type = "playlist"
)

// Range is an optional numeric bound pair. Nil means unbounded.
type Range struct {
	Min *float64
	Max *float64
}

// Params describes a single-type search. Filter maps are keyed by the
// dimension name of the type (e.g. "year", "genre_ids", "user_ids").
type Params struct {
	Query      string
	Page       int // default 1
	PerPage    int // default 20
	SortBy     string
	Ranges     map[string]Range
	Sets       map[string][]string
	Exclusions map[string][]string
	Actor      string // caller id, empty for anonymous
}

// MultiOptions narrows a multi-type search.
type MultiOptions struct {
	PerType int    // 0 selects the mode default
	Types   []Type // empty selects every type
	Actor   string
}

// Record is one hydrated document as stored in the record store.
type Record map[string]any

// ID returns the record id as a string, or "".
func (r Record) ID() string {
	return record.Record(r).ID()
}

// Pagination summarizes paging of one type's results.
type Pagination struct {
	TotalResults int
	TotalPages   int
	CurrentPage  int
	PerPage      int
}

// Result is the hydrated page of one type, in engine order.
type Result struct {
	Records    []Record
	Pagination Pagination
}

// Best is the cross-type winner of a multi-type search.
type Best struct {
	Type   Type
	Record Record
}

// Aggregate is the outcome of a multi-type search. Best is nil when no
// type had a hit.
type Aggregate struct {
	Best    *Best
	Results map[Type]Result
}

func fromTypeResult(tr result.TypeResult) Result {
	recs := make([]Record, len(tr.Records))
	for i, r := range tr.Records {
		recs[i] = Record(r)
	}
	return Result{
		Records: recs,
		Pagination: Pagination{
			TotalResults: tr.Pagination.TotalResults,
			TotalPages:   tr.Pagination.TotalPages,
			CurrentPage:  tr.Pagination.CurrentPage,
			PerPage:      tr.Pagination.PerPage,
		},
	}
}

func fromAggregate(a result.Aggregate) Aggregate {
	out := Aggregate{Results: make(map[Type]Result, len(a.Sections))}
	for _, s := range a.Sections {
		out.Results[Type(s.Kind)] = fromTypeResult(s.Result)
	}
	if a.Best != nil {
		out.Best = &Best{Type: Type(a.Best.Type), Record: Record(a.Best.Record)}
	}
	return out
}
