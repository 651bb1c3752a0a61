// =============================================================================
// Dealership Inventory - Vehicle Types and Factory
// =============================================================================
//
// The vehicle variants form a closed set. Each variant fixes its display name
// and its rental policy: most variants toggle freely, the sports car refuses
// both enable and disable. The policy is resolved once from a per-type table
// when the vehicle is constructed, so a vehicle's rental behavior can never
// change after creation.
//
// The factory is stateless: New builds a vehicle from the critical fields and
// FromRecord pulls those fields out of a schema record, surfacing the same
// typed failure set either way.
//
// =============================================================================

package inventory

import (
	"fmt"
	"strings"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// VehicleType is one of the four fixed vehicle variants.
type VehicleType int

const (
	TypeSedan VehicleType = iota
	TypeSUV
	TypePickup
	TypeSportsCar
)

// String returns the display type string used in records and messages.
func (t VehicleType) String() string {
	switch t {
	case TypeSedan:
		return "sedan"
	case TypeSUV:
		return "suv"
	case TypePickup:
		return "pickup"
	case TypeSportsCar:
		return "sports car"
	default:
		return "unknown"
	}
}

// ParseVehicleType resolves a type name case-insensitively. "sportscar" and
// "sports car" both name the sports car variant.
func ParseVehicleType(name string) (VehicleType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sedan":
		return TypeSedan, nil
	case "suv":
		return TypeSUV, nil
	case "pickup":
		return TypePickup, nil
	case "sports car", "sportscar", "sports_car":
		return TypeSportsCar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidVehicleType, name)
	}
}

// RentalPolicy decides whether a vehicle's rental flag may be flipped to the
// requested state, mutating the vehicle on success.
type RentalPolicy func(v *Vehicle, enable bool) error

// rentalPolicies binds each variant to its policy.
var rentalPolicies = map[VehicleType]RentalPolicy{
	TypeSedan:     defaultRentalPolicy,
	TypeSUV:       defaultRentalPolicy,
	TypePickup:    defaultRentalPolicy,
	TypeSportsCar: noRentalPolicy,
}

func defaultRentalPolicy(v *Vehicle, enable bool) error {
	v.RentalEnabled = enable
	return nil
}

func noRentalPolicy(v *Vehicle, enable bool) error {
	return fmt.Errorf("%w: %s", ErrRentalNotAllowed, v.Type)
}

// Vehicle is a single unit of inventory. It is owned by exactly one
// dealership inventory (sales or rental) at a time.
type Vehicle struct {
	ID            string
	Manufacturer  string
	Model         string
	Price         int64
	PriceUnit     string
	AcquisitionMS int64 // epoch millis; zero means unknown
	Type          VehicleType
	RentalEnabled bool

	policy RentalPolicy
}

// New builds a validated vehicle from the critical fields.
//
// Failures: ErrInvalidVehicleType for an unrecognized type name,
// ErrInvalidPrice for a non-positive price, ErrMissingCriticalInfo for an
// empty id or model. Manufacturer, acquisition date, price unit, and rental
// status are optional and set after construction.
func New(typeName, id, model string, price int64) (*Vehicle, error) {
	vt, err := ParseVehicleType(typeName)
	if err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrice, price)
	}
	if strings.TrimSpace(id) == "" || strings.TrimSpace(model) == "" {
		return nil, ErrMissingCriticalInfo
	}

	return &Vehicle{
		ID:     id,
		Model:  model,
		Price:  price,
		Type:   vt,
		policy: rentalPolicies[vt],
	}, nil
}

// FromRecord builds a vehicle from a schema record, pulling typed values
// through the attribute schema and delegating to New. A missing type, price,
// id, or model surfaces as the corresponding factory failure.
func FromRecord(rec schema.Record) (*Vehicle, error) {
	typeName, ok := rec.GetString(schema.VehicleType)
	if !ok {
		return nil, fmt.Errorf("%w: attribute absent", ErrInvalidVehicleType)
	}
	price, ok := rec.GetInt64(schema.Price)
	if !ok {
		return nil, fmt.Errorf("%w: attribute absent", ErrInvalidPrice)
	}
	id, _ := rec.GetString(schema.VehicleID)
	model, _ := rec.GetString(schema.VehicleModel)

	v, err := New(typeName, id, model, price)
	if err != nil {
		return nil, err
	}

	if manufacturer, ok := rec.GetString(schema.VehicleManufacturer); ok {
		v.Manufacturer = manufacturer
	}
	if unit, ok := rec.GetString(schema.PriceUnit); ok {
		v.PriceUnit = unit
	}
	if acquired, ok := rec.GetInt64(schema.AcquisitionDate); ok {
		v.AcquisitionMS = acquired
	}
	if rental, ok := rec.GetBool(schema.VehicleRental); ok {
		v.RentalEnabled = rental
	}

	return v, nil
}

// SetRental asks the vehicle's bound policy to flip the rental flag to the
// requested state.
func (v *Vehicle) SetRental(enable bool) error {
	return v.policy(v, enable)
}

// Record exports the vehicle's current attributes. Dealership-level fields
// are added by the owning dealership's export.
func (v *Vehicle) Record() schema.Record {
	rec := schema.NewRecord()
	rec.Put(schema.VehicleID, v.ID)
	rec.Put(schema.VehicleType, v.Type.String())
	rec.Put(schema.VehicleModel, v.Model)
	rec.Put(schema.Price, v.Price)
	rec.Put(schema.VehicleRental, v.RentalEnabled)
	if v.Manufacturer != "" {
		rec.Put(schema.VehicleManufacturer, v.Manufacturer)
	}
	if v.PriceUnit != "" {
		rec.Put(schema.PriceUnit, v.PriceUnit)
	}
	if v.AcquisitionMS != 0 {
		rec.Put(schema.AcquisitionDate, v.AcquisitionMS)
	}
	return rec
}
