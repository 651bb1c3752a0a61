// =============================================================================
// Dealership Inventory - Heterogeneous Record
// =============================================================================
//
// A Record is an unordered mapping from schema attributes to values. It is
// the common currency between the file codecs and the domain layer: codecs
// produce records on read and consume them on write, the domain layer
// consumes them on import and produces them on export.
//
// All type checking happens here, at the mapping boundary. Put refuses a
// value whose runtime type does not match the attribute's declared kind, and
// each typed getter only returns a value stored under an attribute of the
// matching kind. Nothing downstream ever needs a type assertion.
//
// =============================================================================

package schema

// Record maps attributes to values. Keys are unique; a record is never
// mutated concurrently.
type Record struct {
	values map[Attribute]any
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{values: make(map[Attribute]any)}
}

// Put stores value under attr if the value's runtime type matches the
// attribute's declared kind. It reports whether the value was stored.
func (r Record) Put(attr Attribute, value any) bool {
	switch attr.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return false
		}
	case KindInt64:
		if _, ok := value.(int64); !ok {
			return false
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return false
		}
	default:
		return false
	}
	r.values[attr] = value
	return true
}

// Has reports whether attr is present.
func (r Record) Has(attr Attribute) bool {
	_, ok := r.values[attr]
	return ok
}

// Delete removes attr from the record if present.
func (r Record) Delete(attr Attribute) {
	delete(r.values, attr)
}

// Len returns the number of stored attributes.
func (r Record) Len() int {
	return len(r.values)
}

// GetString returns the value stored under attr when both the attribute and
// the stored value are string-kinded. The boolean is false otherwise; a
// mismatch never panics or errors.
func (r Record) GetString(attr Attribute) (string, bool) {
	if attr.Kind != KindString {
		return "", false
	}
	s, ok := r.values[attr].(string)
	return s, ok
}

// GetInt64 returns the int64 stored under attr, if any.
func (r Record) GetInt64(attr Attribute) (int64, bool) {
	if attr.Kind != KindInt64 {
		return 0, false
	}
	n, ok := r.values[attr].(int64)
	return n, ok
}

// GetBool returns the bool stored under attr, if any.
func (r Record) GetBool(attr Attribute) (bool, bool) {
	if attr.Kind != KindBool {
		return false, false
	}
	b, ok := r.values[attr].(bool)
	return b, ok
}

// Value returns the raw stored value for attr. Codecs use this when emitting
// a record; domain code should prefer the typed getters.
func (r Record) Value(attr Attribute) (any, bool) {
	v, ok := r.values[attr]
	return v, ok
}

// IsSatisfied reports whether every required attribute is present with a
// correctly-typed value. Codecs emit incomplete records rather than dropping
// them; this is how the domain layer detects and rejects those.
func (r Record) IsSatisfied() bool {
	for _, a := range attributes {
		if !a.Required {
			continue
		}
		if _, ok := r.values[a]; !ok {
			return false
		}
	}
	return true
}

// MissingRequired lists the required attributes absent from the record, in
// canonical order. Used to build human-readable failure reasons.
func (r Record) MissingRequired() []Attribute {
	var missing []Attribute
	for _, a := range attributes {
		if a.Required && !r.Has(a) {
			missing = append(missing, a)
		}
	}
	return missing
}

// SetErrorReason annotates the record with a per-record failure reason.
func (r Record) SetErrorReason(reason string) {
	r.values[ErrorReason] = reason
}

// ErrorReason returns the failure annotation, or "" if the record has none.
func (r Record) ErrorReason() string {
	s, _ := r.GetString(ErrorReason)
	return s
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := NewRecord()
	for k, v := range r.values {
		out.values[k] = v
	}
	return out
}
