package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Record is a full store row keyed by field name.
type Record map[string]any

// ID returns the record primary key as a string. Numeric ids are formatted
// without exponent so they compare equal to engine ids.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Decode parses a JSON object into a Record. Numbers stay json.Number so
// ids above 2^53 keep every digit.
func Decode(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var r Record
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if r == nil {
		return nil, errors.New("decode record: not an object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode record: trailing data")
	}
	return r, nil
}
