// =============================================================================
// Dealership Inventory - JSON Codec
// =============================================================================
//
// File shape: a top-level object with a single "car_inventory" array. Each
// element is a flat object whose field names equal the canonical attribute
// names. Decode maps fields to attributes 1:1, skipping unknown fields and
// fields whose value does not coerce to the attribute's kind; a record
// missing required attributes is still emitted, and the domain layer rejects
// it via the schema's required-field check. Encode is the inverse and only
// emits attributes present on each record.
//
// =============================================================================

package jsoncodec

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// rootField is the single array field of the top-level object.
const rootField = "car_inventory"

// Codec reads and writes the JSON inventory format.
type Codec struct{}

// New returns the JSON codec.
func New() *Codec {
	return &Codec{}
}

// Name implements codec.Codec.
func (c *Codec) Name() string { return "json" }

// ReadExtensions implements codec.Codec.
func (c *Codec) ReadExtensions() []string { return []string{".json"} }

// WriteExtensions implements codec.Codec.
func (c *Codec) WriteExtensions() []string { return []string{".json"} }

// Decode parses the file into one record per array element. Malformed JSON
// or a missing root array is a structural error; everything at the field
// level is tolerated by omission.
func (c *Codec) Decode(data []byte) ([]schema.Record, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed JSON document: %w", err)
	}

	raw, ok := doc[rootField]
	if !ok {
		return nil, fmt.Errorf("malformed JSON document: missing %q array", rootField)
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("malformed %q array: %w", rootField, err)
	}

	records := make([]schema.Record, 0, len(entries))
	for _, entry := range entries {
		rec := schema.NewRecord()
		for name, value := range entry {
			attr, ok := schema.Lookup(name)
			if !ok {
				continue // field outside the schema
			}
			if coerced, ok := coerce(value, attr.Kind); ok {
				rec.Put(attr, coerced)
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Encode renders the records back into the top-level-object-plus-array shape.
func (c *Codec) Encode(records []schema.Record) ([]byte, error) {
	entries := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		entry := make(map[string]any)
		for _, attr := range schema.All() {
			if v, ok := rec.Value(attr); ok {
				entry[attr.Name] = v
			}
		}
		entries = append(entries, entry)
	}

	data, err := json.MarshalIndent(map[string]any{rootField: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory: %w", err)
	}
	return data, nil
}

// coerce converts a decoded JSON value to the attribute's kind. JSON numbers
// arrive as float64; integral ones are accepted for int64 attributes,
// fractional ones are not.
func coerce(value any, kind schema.Kind) (any, bool) {
	switch kind {
	case schema.KindString:
		s, ok := value.(string)
		return s, ok
	case schema.KindBool:
		b, ok := value.(bool)
		return b, ok
	case schema.KindInt64:
		f, ok := value.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, false
		}
		return int64(f), true
	default:
		return nil, false
	}
}
