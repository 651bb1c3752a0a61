// =============================================================================
// Dealership Inventory - Attribute Schema
// =============================================================================
//
// This package defines the closed set of typed attributes that make up a
// vehicle/dealership record, and the heterogeneous Record that carries those
// attributes between the file codecs and the domain layer.
//
// Every attribute has a canonical name, an expected value kind, and a flag
// marking whether a record must carry it to be importable. Type checking is
// centralized at the Record boundary: a value can only be stored under an
// attribute if its runtime type matches the attribute's kind, and a value can
// only be read back through the accessor of the matching kind. Downstream
// code can therefore assume any value it retrieves is already correctly
// typed.
//
// =============================================================================

package schema

// Kind is the expected value type of an attribute.
type Kind int

const (
	KindString Kind = iota
	KindInt64
	KindBool
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Attribute is a single schema entry: a named, typed, optionally-required
// field of a record. Attributes are compared by value, so they can be used
// directly as map keys.
type Attribute struct {
	Name     string
	Kind     Kind
	Required bool
}

// =============================================================================
// ATTRIBUTE SET
// =============================================================================
// The fixed, closed set of attributes. Names double as the JSON field names
// and the CSV/XLSX header names; the XML codec maps its own tag names onto
// these via an alias table.

var (
	DealershipID        = Attribute{Name: "dealership_id", Kind: KindString, Required: true}
	DealershipName      = Attribute{Name: "dealership_name", Kind: KindString}
	DealershipReceiving = Attribute{Name: "dealership_receiving_status", Kind: KindBool}
	DealershipRenting   = Attribute{Name: "dealership_rental_status", Kind: KindBool}

	VehicleType         = Attribute{Name: "vehicle_type", Kind: KindString, Required: true}
	VehicleManufacturer = Attribute{Name: "vehicle_manufacturer", Kind: KindString}
	VehicleModel        = Attribute{Name: "vehicle_model", Kind: KindString, Required: true}
	VehicleID           = Attribute{Name: "vehicle_id", Kind: KindString, Required: true}
	VehicleRental       = Attribute{Name: "vehicle_rental_status", Kind: KindBool}
	Price               = Attribute{Name: "price", Kind: KindInt64, Required: true}
	PriceUnit           = Attribute{Name: "price_unit", Kind: KindString}
	AcquisitionDate     = Attribute{Name: "acquisition_date", Kind: KindInt64}

	// ErrorReason is synthetic: it never appears in input files and is only
	// attached to records that fail the batch import.
	ErrorReason = Attribute{Name: "error_reason", Kind: KindString}
)

// attributes lists every schema entry in canonical (export) order.
var attributes = []Attribute{
	DealershipID,
	DealershipName,
	DealershipReceiving,
	DealershipRenting,
	VehicleType,
	VehicleManufacturer,
	VehicleModel,
	VehicleID,
	VehicleRental,
	Price,
	PriceUnit,
	AcquisitionDate,
	ErrorReason,
}

var byName = func() map[string]Attribute {
	m := make(map[string]Attribute, len(attributes))
	for _, a := range attributes {
		m[a.Name] = a
	}
	return m
}()

// All returns every attribute in canonical order. The returned slice is a
// copy and safe to modify.
func All() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// Lookup resolves a canonical attribute name to its schema entry.
// Returns false for names outside the schema; codecs use this to skip
// unknown fields.
func Lookup(name string) (Attribute, bool) {
	a, ok := byName[name]
	return a, ok
}

// Required returns the attributes a record must carry to describe an
// importable vehicle, in canonical order.
func Required() []Attribute {
	var out []Attribute
	for _, a := range attributes {
		if a.Required {
			out = append(out, a)
		}
	}
	return out
}
