package field

import (
	"fmt"
	"regexp"
)

var nameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Type is the filter shape a dimension accepts.
type Type string

// Field type constants.
const (
	// Range is a numeric (min, max) dimension.
	Range Type = "range"
	// Set is a membership dimension (category ids and the like).
	Set Type = "set"
	// Exclusion is a not-equal dimension (e.g. hiding specific users).
	Exclusion Type = "exclusion"
)

// IsValid checks if the field type is supported.
func (t Type) IsValid() bool {
	return t == Range || t == Set || t == Exclusion
}

// Field is an immutable filter dimension: the public name callers use and
// the engine field it filters on.
type Field struct {
	name      string
	target    string
	fieldType Type
}

// New validates and creates a Field.
// Both names must be lower snake case, max 64 chars.
func New(name, target string, ft Type) (Field, error) {
	for _, n := range []string{name, target} {
		if n == "" {
			return Field{}, fmt.Errorf("field name is required")
		}
		if len(n) > 64 {
			return Field{}, fmt.Errorf("field name %q too long (max 64)", n)
		}
		if !nameRegex.MatchString(n) {
			return Field{}, fmt.Errorf("field name %q must be lower snake case", n)
		}
	}
	if !ft.IsValid() {
		return Field{}, fmt.Errorf("invalid field type %q for %q", ft, name)
	}
	return Field{name: name, target: target, fieldType: ft}, nil
}

// MustNew calls New and panics on error. Used for the static catalog.
func MustNew(name, target string, ft Type) Field {
	f, err := New(name, target, ft)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the public dimension name.
func (f Field) Name() string { return f.name }

// Target returns the engine field the dimension filters on.
func (f Field) Target() string { return f.target }

// FieldType returns the filter shape.
func (f Field) FieldType() Type { return f.fieldType }
