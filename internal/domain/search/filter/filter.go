// Package filter renders engine filter expressions.
//
// Grammar: `field:value`, exact `field:=value`, `field:[a..b]` (inclusive
// range), `field:>x`, `field:<x`, set membership `field:[v1,v2]`, not-equal
// `field:!=v`, combined with `&&` and `||`.
package filter

import (
	"strconv"
	"strings"
)

// MaxValues is the maximum number of values in one set or exclusion filter.
const MaxValues = 100

const (
	andSep = " && "
	orSep  = " || "
)

// Bounds is an optional (min, max) pair for one numeric dimension.
type Bounds struct {
	Min *float64
	Max *float64
}

// IsEmpty reports whether neither bound is present.
func (b Bounds) IsEmpty() bool { return b.Min == nil && b.Max == nil }

// Expression is an AND-joined list of terms.
type Expression struct {
	terms []string
}

// And returns a copy of e with the non-empty terms appended.
func (e Expression) And(terms ...string) Expression {
	out := make([]string, 0, len(e.terms)+len(terms))
	out = append(out, e.terms...)
	for _, t := range terms {
		if t != "" {
			out = append(out, t)
		}
	}
	return Expression{terms: out}
}

// Terms returns the terms of the expression.
func (e Expression) Terms() []string { return e.terms }

// IsEmpty reports whether the expression has no terms.
func (e Expression) IsEmpty() bool { return len(e.terms) == 0 }

// String renders the expression in engine syntax. Empty expressions render as "".
func (e Expression) String() string {
	return strings.Join(e.terms, andSep)
}

// Range renders the tri-state range term for field.
// Both bounds give a closed inclusive range, a lone min gives a strict
// greater-than, a lone max gives a strict less-than. No bounds gives "".
func Range(field string, b Bounds) string {
	switch {
	case b.Min != nil && b.Max != nil:
		return field + ":[" + formatNumber(*b.Min) + ".." + formatNumber(*b.Max) + "]"
	case b.Min != nil:
		return field + ":>" + formatNumber(*b.Min)
	case b.Max != nil:
		return field + ":<" + formatNumber(*b.Max)
	default:
		return ""
	}
}

// In renders a set membership term. No values gives "".
func In(field string, values []string) string {
	return set(field+":", values)
}

// ExactIn is In without token matching: a value must equal one of the set
// verbatim.
func ExactIn(field string, values []string) string {
	return set(field+":=", values)
}

func set(prefix string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Value(v)
	}
	return prefix + "[" + strings.Join(quoted, ",") + "]"
}

// Equal renders a match term. On string fields the engine matches tokens,
// so "u4" also matches "u4 x".
func Equal(field, value string) string {
	return field + ":" + Value(value)
}

// ExactEqual renders a term that only matches the whole value.
func ExactEqual(field, value string) string {
	return field + ":=" + Value(value)
}

// NotEqual renders one not-equal term per value, AND-joined. No values gives "".
func NotEqual(field string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	terms := make([]string, len(values))
	for i, v := range values {
		terms[i] = field + ":!=" + Value(v)
	}
	return strings.Join(terms, andSep)
}

// Or joins terms with || inside parentheses. Empty terms are skipped; a
// single remaining term is returned unwrapped.
func Or(terms ...string) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			parts = append(parts, t)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return "(" + strings.Join(parts, orSep) + ")"
	}
}

// Value quotes v with backticks when it contains grammar characters.
// Callers must reject values that fail Quotable first.
func Value(v string) string {
	if !strings.ContainsAny(v, reserved) {
		return v
	}
	return quote + v + quote
}

// Quotable reports whether v can be rendered as one filter value. The
// grammar has no escape for the quote character itself.
func Quotable(v string) bool {
	return !strings.Contains(v, quote)
}

const (
	quote    = "`"
	reserved = ",:[]()&|!<>=` "
)

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
