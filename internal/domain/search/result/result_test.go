package result

import (
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/multisearch/internal/domain/record"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/pagination"
)

func TestNewTypeResult_NilRecordsEncodeAsEmptyArray(t *testing.T) {
	tr := NewTypeResult(nil, pagination.Calculate(0, 1, 20))

	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"data":[],"pagination":{"total_results":0,"total_pages":0,"current_page":1,"per_page":20}}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}

func TestTypeResult_Find(t *testing.T) {
	tr := NewTypeResult([]record.Record{{"id": "a"}, {"id": "b", "title": "B"}}, pagination.Block{})

	r, ok := tr.Find("b")
	if !ok || r["title"] != "B" {
		t.Errorf("Find(b) = %v, %v", r, ok)
	}
	if _, ok := tr.Find("zzz"); ok {
		t.Error("Find(zzz) should miss")
	}
}

func TestAggregate_MarshalJSON(t *testing.T) {
	agg := Aggregate{
		Best: &Best{Type: kind.Movie, Record: record.Record{"id": "m1"}},
		Sections: []Section{
			{Kind: kind.Movie, Key: "movies", Result: NewTypeResult(
				[]record.Record{{"id": "m1"}}, pagination.Calculate(1, 1, 3))},
			{Kind: kind.User, Key: "users", Result: NewTypeResult(nil, pagination.Calculate(0, 1, 3))},
		},
	}

	data, err := json.Marshal(agg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded["bestResult"]) != `{"type":"movie","data":{"id":"m1"}}` {
		t.Errorf("bestResult = %s", decoded["bestResult"])
	}
	if _, ok := decoded["movies"]; !ok {
		t.Error("missing movies section")
	}
	if string(decoded["users"]) != `{"data":[],"pagination":{"total_results":0,"total_pages":0,"current_page":1,"per_page":3}}` {
		t.Errorf("users = %s", decoded["users"])
	}
}

func TestAggregate_MarshalJSON_NullBest(t *testing.T) {
	data, err := json.Marshal(Aggregate{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"bestResult":null}` {
		t.Errorf("got %s", data)
	}
}

func TestAggregate_Section(t *testing.T) {
	agg := Aggregate{Sections: []Section{{Kind: kind.Person, Key: "persons"}}}
	if s, ok := agg.Section(kind.Person); !ok || s.Key != "persons" {
		t.Errorf("Section(person) = %+v, %v", s, ok)
	}
	if _, ok := agg.Section(kind.Movie); ok {
		t.Error("Section(movie) should miss")
	}
}
