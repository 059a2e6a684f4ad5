package record

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"string", Record{"id": "abc"}, "abc"},
		{"float", Record{"id": float64(603)}, "603"},
		{"large float", Record{"id": float64(1234567890)}, "1234567890"},
		{"json number", Record{"id": json.Number("42")}, "42"},
		{"int64", Record{"id": int64(7)}, "7"},
		{"missing", Record{"title": "x"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.ID(); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	r, err := Decode([]byte(`{"id":"m1","title":"Heat","genre_ids":[80,18]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID() != "m1" {
		t.Errorf("ID() = %q", r.ID())
	}
	if r["title"] != "Heat" {
		t.Errorf("title = %v", r["title"])
	}
}

func TestDecode_KeepsLargeIntegerIDs(t *testing.T) {
	r, err := Decode([]byte(`{"id":9007199254740993,"vote_average":7.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID() != "9007199254740993" {
		t.Errorf("ID() = %q, want 9007199254740993", r.ID())
	}
	if r["vote_average"] != json.Number("7.5") {
		t.Errorf("vote_average = %#v", r["vote_average"])
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(out, []byte(`"id":9007199254740993`)) {
		t.Errorf("re-encoded record lost precision: %s", out)
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := Decode([]byte(`null`)); err == nil {
		t.Error("expected error for null document")
	}
	if _, err := Decode([]byte(`{"id":"a"} {"id":"b"}`)); err == nil {
		t.Error("expected error for trailing data")
	}
}
