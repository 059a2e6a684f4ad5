package result

import (
	"encoding/json"

	"github.com/kailas-cloud/multisearch/internal/domain/record"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/pagination"
)

// bestResultKey is the JSON key of the fused winner in multi-collection responses.
const bestResultKey = "bestResult"

// TypeResult is the hydrated, paginated result of one collection.
type TypeResult struct {
	Records    []record.Record  `json:"data"`
	Pagination pagination.Block `json:"pagination"`
}

// NewTypeResult creates a TypeResult. A nil records slice becomes empty so it encodes as [].
func NewTypeResult(records []record.Record, block pagination.Block) TypeResult {
	if records == nil {
		records = []record.Record{}
	}
	return TypeResult{Records: records, Pagination: block}
}

// Find returns the record with the given id, if hydrated.
func (t TypeResult) Find(id string) (record.Record, bool) {
	for _, r := range t.Records {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// Best is the cross-type winner of a multi-collection search.
type Best struct {
	Type   kind.Kind     `json:"type"`
	Record record.Record `json:"data"`
}

// Section is one keyed per-type entry of a multi-collection response.
type Section struct {
	Kind   kind.Kind
	Key    string
	Result TypeResult
}

// Aggregate is the multi-collection response: an optional best result plus
// one section per queried type.
type Aggregate struct {
	Best     *Best
	Sections []Section
}

// Section returns the section for k, if it was queried.
func (a Aggregate) Section(k kind.Kind) (Section, bool) {
	for _, s := range a.Sections {
		if s.Kind == k {
			return s, true
		}
	}
	return Section{}, false
}

// MarshalJSON encodes the aggregate as {"bestResult": ..., "<key>": {...}, ...}.
func (a Aggregate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Sections)+1)
	if a.Best != nil {
		out[bestResultKey] = a.Best
	} else {
		out[bestResultKey] = nil
	}
	for _, s := range a.Sections {
		out[s.Key] = s.Result
	}
	return json.Marshal(out)
}
