package collection

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/kailas-cloud/multisearch/internal/domain/collection/field"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// PermissionFunc builds the visibility term for an actor ("" = anonymous).
// An empty return means the collection is unrestricted.
type PermissionFunc func(actor string) string

// Spec holds the raw fields of a Descriptor.
type Spec struct {
	Kind          kind.Kind
	Key           string // response key, e.g. "movies"
	Name          string // engine collection
	QueryFields   []string
	SortFields    []string
	SecondarySort string
	Location      string // store collection or table
	Popularity    []string
	Fields        []field.Field
	Permission    PermissionFunc
}

// Descriptor describes one searchable collection (immutable value object).
type Descriptor struct {
	spec Spec
}

// New validates and creates a Descriptor.
func New(s Spec) (Descriptor, error) {
	if !s.Kind.IsValid() {
		return Descriptor{}, fmt.Errorf("invalid kind %q", s.Kind)
	}
	if s.Key == "" {
		return Descriptor{}, fmt.Errorf("%s: response key is required", s.Kind)
	}
	if err := validateName(s.Name); err != nil {
		return Descriptor{}, fmt.Errorf("%s: engine collection: %w", s.Kind, err)
	}
	if err := validateName(s.Location); err != nil {
		return Descriptor{}, fmt.Errorf("%s: store location: %w", s.Kind, err)
	}
	if len(s.QueryFields) == 0 {
		return Descriptor{}, fmt.Errorf("%s: at least one query field is required", s.Kind)
	}
	if !slices.Contains(s.SortFields, s.SecondarySort) {
		return Descriptor{}, fmt.Errorf("%s: secondary sort %q is not a sort field", s.Kind, s.SecondarySort)
	}
	if len(s.Popularity) == 0 {
		return Descriptor{}, fmt.Errorf("%s: popularity fallback is required", s.Kind)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.Name()] {
			return Descriptor{}, fmt.Errorf("%s: duplicate filter dimension %q", s.Kind, f.Name())
		}
		seen[f.Name()] = true
	}
	return Descriptor{spec: s}, nil
}

// MustNew calls New and panics on error. Used for the static catalog.
func MustNew(s Spec) Descriptor {
	d, err := New(s)
	if err != nil {
		panic(err)
	}
	return d
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 128 {
		return fmt.Errorf("name too long (max 128)")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("name %q must be alphanumeric with underscores, dots and hyphens", name)
	}
	return nil
}

// Kind returns the type tag.
func (d Descriptor) Kind() kind.Kind { return d.spec.Kind }

// Key returns the response key of the type.
func (d Descriptor) Key() string { return d.spec.Key }

// Name returns the engine collection name.
func (d Descriptor) Name() string { return d.spec.Name }

// QueryFields returns the engine text fields searched by the query.
func (d Descriptor) QueryFields() []string { return d.spec.QueryFields }

// QueryBy returns the comma-joined query fields.
func (d Descriptor) QueryBy() string { return strings.Join(d.spec.QueryFields, ",") }

// SortFields returns the fields a caller may sort by.
func (d Descriptor) SortFields() []string { return d.spec.SortFields }

// AllowsSort reports whether name is a permitted sort field.
func (d Descriptor) AllowsSort(name string) bool { return slices.Contains(d.spec.SortFields, name) }

// SecondarySort returns the fixed secondary sort field for multi-collection mode.
func (d Descriptor) SecondarySort() string { return d.spec.SecondarySort }

// Location returns the store collection holding full records.
func (d Descriptor) Location() string { return d.spec.Location }

// Popularity returns the ordered popularity fallback fields.
func (d Descriptor) Popularity() []string { return d.spec.Popularity }

// Fields returns the declared filter dimensions.
func (d Descriptor) Fields() []field.Field { return d.spec.Fields }

// FieldByName finds a filter dimension by its public name.
func (d Descriptor) FieldByName(name string) (field.Field, bool) {
	for _, f := range d.spec.Fields {
		if f.Name() == name {
			return f, true
		}
	}
	return field.Field{}, false
}

// Visibility returns the permission term for actor, or "" for unrestricted collections.
func (d Descriptor) Visibility(actor string) string {
	if d.spec.Permission == nil {
		return ""
	}
	return d.spec.Permission(actor)
}

// IncludeFields returns the engine fields fetched with each hit: id plus the popularity fallback.
func (d Descriptor) IncludeFields() []string {
	out := make([]string, 0, len(d.spec.Popularity)+1)
	out = append(out, "id")
	for _, p := range d.spec.Popularity {
		if p != "id" {
			out = append(out, p)
		}
	}
	return out
}

// WithLocation returns a copy of d reading records from location.
func (d Descriptor) WithLocation(location string) (Descriptor, error) {
	s := d.spec
	s.Location = location
	return New(s)
}
