package collection

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/collection/field"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
)

func validSpec() Spec {
	return Spec{
		Kind:          kind.Movie,
		Key:           "movies",
		Name:          "movies",
		QueryFields:   []string{"title"},
		SortFields:    []string{"popularity", "vote_average"},
		SecondarySort: "popularity",
		Location:      "movies",
		Popularity:    []string{"popularity"},
		Fields:        []field.Field{field.MustNew("year", "release_year", field.Range)},
	}
}

func TestNew_Valid(t *testing.T) {
	d, err := New(validSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind() != kind.Movie || d.Name() != "movies" || d.Location() != "movies" {
		t.Errorf("unexpected descriptor: %+v", d)
	}
	if !d.AllowsSort("vote_average") || d.AllowsSort("title") {
		t.Error("AllowsSort mismatch")
	}
	if f, ok := d.FieldByName("year"); !ok || f.Target() != "release_year" {
		t.Errorf("FieldByName(year) = %+v, %v", f, ok)
	}
	if _, ok := d.FieldByName("rating"); ok {
		t.Error("FieldByName(rating) should miss")
	}
	if d.Visibility("anyone") != "" {
		t.Error("unrestricted collection should have no visibility term")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		substr string
	}{
		{"bad kind", func(s *Spec) { s.Kind = "song" }, "invalid kind"},
		{"no key", func(s *Spec) { s.Key = "" }, "response key"},
		{"bad name", func(s *Spec) { s.Name = "mov ies" }, "engine collection"},
		{"no location", func(s *Spec) { s.Location = "" }, "store location"},
		{"no query fields", func(s *Spec) { s.QueryFields = nil }, "query field"},
		{"secondary not sortable", func(s *Spec) { s.SecondarySort = "runtime" }, "secondary sort"},
		{"no popularity", func(s *Spec) { s.Popularity = nil }, "popularity"},
		{"duplicate dimension", func(s *Spec) {
			s.Fields = append(s.Fields, field.MustNew("year", "first_air_year", field.Range))
		}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSpec()
			tt.mutate(&s)
			_, err := New(s)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error = %q, want substring %q", err, tt.substr)
			}
		})
	}
}

func TestDescriptor_QueryByAndIncludeFields(t *testing.T) {
	s := validSpec()
	s.QueryFields = []string{"title", "original_title"}
	s.Popularity = []string{"popularity", "followers_count"}
	d := MustNew(s)

	if d.QueryBy() != "title,original_title" {
		t.Errorf("QueryBy() = %q", d.QueryBy())
	}
	want := []string{"id", "popularity", "followers_count"}
	if got := d.IncludeFields(); !slices.Equal(got, want) {
		t.Errorf("IncludeFields() = %v, want %v", got, want)
	}
}

func TestDescriptor_WithLocation(t *testing.T) {
	d := MustNew(validSpec())
	moved, err := d.WithLocation("public.films")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved.Location() != "public.films" {
		t.Errorf("Location() = %q", moved.Location())
	}
	if d.Location() != "movies" {
		t.Error("WithLocation must not mutate the original")
	}
	if _, err := d.WithLocation("drop table;"); err == nil {
		t.Error("expected error for invalid location")
	}
}

func TestPlaylistVisibility(t *testing.T) {
	if got := PlaylistVisibility(""); got != "is_private:false" {
		t.Errorf("anonymous = %q", got)
	}
	want := "(is_private:false || owner_id:=u42 || guest_ids:=[u42])"
	if got := PlaylistVisibility("u42"); got != want {
		t.Errorf("actor = %q, want %q", got, want)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if !slices.Equal(c.Kinds(), kind.All()) {
		t.Errorf("Kinds() = %v", c.Kinds())
	}

	wantSecondary := map[kind.Kind]string{
		kind.Movie:    "popularity",
		kind.TVSeries: "popularity",
		kind.Person:   "popularity",
		kind.User:     "followers_count",
		kind.Playlist: "likes_count",
	}
	for k, want := range wantSecondary {
		d, err := c.Get(k)
		if err != nil {
			t.Fatalf("Get(%s): %v", k, err)
		}
		if d.SecondarySort() != want {
			t.Errorf("%s secondary = %q, want %q", k, d.SecondarySort(), want)
		}
	}

	pl, _ := c.Get(kind.Playlist)
	if pl.Visibility("") != "is_private:false" {
		t.Errorf("playlist anonymous visibility = %q", pl.Visibility(""))
	}
	mv, _ := c.Get(kind.Movie)
	if mv.Visibility("u1") != "" {
		t.Error("movies should be unrestricted")
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	c, err := NewCatalog(MustNew(validSpec()))
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if _, err := c.Get(kind.User); !errors.Is(err, domain.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestNewCatalog_Duplicate(t *testing.T) {
	d := MustNew(validSpec())
	if _, err := NewCatalog(d, d); err == nil {
		t.Error("expected duplicate error")
	}
}

func TestCatalog_WithLocations(t *testing.T) {
	c := DefaultCatalog()
	moved, err := c.WithLocations(map[kind.Kind]string{kind.User: "accounts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := moved.Get(kind.User)
	if u.Location() != "accounts" {
		t.Errorf("Location() = %q", u.Location())
	}
	orig, _ := c.Get(kind.User)
	if orig.Location() != "users" {
		t.Error("WithLocations must not mutate the original catalog")
	}

	single, _ := NewCatalog(MustNew(validSpec()))
	if _, err := single.WithLocations(map[kind.Kind]string{kind.User: "x"}); !errors.Is(err, domain.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}
