package field

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	tests := []struct {
		name, target string
		ft           Type
	}{
		{"year", "release_year", Range},
		{"genre_ids", "genre_ids", Set},
		{"user_ids", "id", Exclusion},
		{strings.Repeat("x", 64), "x", Range},
	}

	for _, tt := range tests {
		f, err := New(tt.name, tt.target, tt.ft)
		if err != nil {
			t.Errorf("New(%q, %q, %q) unexpected error: %v", tt.name, tt.target, tt.ft, err)
			continue
		}
		if f.Name() != tt.name {
			t.Errorf("Name() = %q, want %q", f.Name(), tt.name)
		}
		if f.Target() != tt.target {
			t.Errorf("Target() = %q, want %q", f.Target(), tt.target)
		}
		if f.FieldType() != tt.ft {
			t.Errorf("FieldType() = %q, want %q", f.FieldType(), tt.ft)
		}
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name, target string
		ft           Type
		substr       string
	}{
		{"", "x", Range, "required"},
		{"year", "", Range, "required"},
		{strings.Repeat("x", 65), "x", Range, "too long"},
		{"Year", "x", Range, "snake case"},
		{"year", "release-year", Range, "snake case"},
		{"year", "release_year", "tag", "invalid field type"},
	}

	for _, tt := range tests {
		_, err := New(tt.name, tt.target, tt.ft)
		if err == nil {
			t.Errorf("New(%q, %q, %q): expected error", tt.name, tt.target, tt.ft)
			continue
		}
		if !strings.Contains(err.Error(), tt.substr) {
			t.Errorf("error = %q, want substring %q", err, tt.substr)
		}
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustNew("", "", Range)
}
