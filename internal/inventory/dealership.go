// =============================================================================
// Dealership Inventory - Dealership
// =============================================================================
//
// A dealership owns two ordered inventories, sales and rental. A vehicle id
// is unique across both. The lifecycle per vehicle is:
//
//	unowned -> inventory matching its rental flag -> (rental <-> sales, via the rental policy) -> removed
//
// ImportRecord is the seam where batch failures become per-record
// annotations: any factory or inventory failure is written onto the record's
// error-reason attribute and the batch moves on.
//
// =============================================================================

package inventory

import (
	"fmt"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// Dealership holds the sales and rental inventories for one location.
type Dealership struct {
	id   string
	Name string

	// Receiving gates AddIncoming; new dealerships accept vehicles.
	Receiving bool

	// RentingEnabled gates rental toggles for the whole dealership.
	RentingEnabled bool

	sales  []*Vehicle
	rental []*Vehicle
}

// NewDealership creates an empty dealership that accepts vehicles and does
// not offer rentals.
func NewDealership(id, name string) *Dealership {
	return &Dealership{
		id:        id,
		Name:      name,
		Receiving: true,
	}
}

// ID returns the immutable dealership id.
func (d *Dealership) ID() string { return d.id }

// SalesInventory returns the sales inventory in insertion order.
func (d *Dealership) SalesInventory() []*Vehicle {
	out := make([]*Vehicle, len(d.sales))
	copy(out, d.sales)
	return out
}

// RentalInventory returns the rental inventory in insertion order.
func (d *Dealership) RentalInventory() []*Vehicle {
	out := make([]*Vehicle, len(d.rental))
	copy(out, d.rental)
	return out
}

// VehicleCount returns the number of vehicles across both inventories.
func (d *Dealership) VehicleCount() int {
	return len(d.sales) + len(d.rental)
}

// FindVehicle looks a vehicle up by id across both inventories.
func (d *Dealership) FindVehicle(id string) *Vehicle {
	for _, v := range d.sales {
		if v.ID == id {
			return v
		}
	}
	for _, v := range d.rental {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// SetReceiving toggles whether AddIncoming accepts vehicles. Existing
// inventory is unaffected.
func (d *Dealership) SetReceiving(receiving bool) {
	d.Receiving = receiving
}

// SetRentingEnabled toggles the dealership's rental service. Existing
// inventory is unaffected.
func (d *Dealership) SetRentingEnabled(renting bool) {
	d.RentingEnabled = renting
}

// acceptCheck reports whether the dealership could take the vehicle right
// now, without mutating anything. Shared by AddIncoming and TransferTo so a
// transfer can validate the receiver before touching the sender.
func (d *Dealership) acceptCheck(v *Vehicle) error {
	if !d.Receiving {
		return fmt.Errorf("%w: %s", ErrNotAcceptingVehicles, d.id)
	}
	if d.FindVehicle(v.ID) != nil {
		return fmt.Errorf("%w: %s", ErrVehicleExists, v.ID)
	}
	return nil
}

// AddIncoming appends the vehicle to the inventory matching its rental flag,
// so a vehicle imported with rental already enabled lands in the rental
// inventory rather than sales.
//
// Failures: ErrNotAcceptingVehicles when receiving is off,
// ErrVehicleExists when the id is already present in either inventory.
func (d *Dealership) AddIncoming(v *Vehicle) error {
	if err := d.acceptCheck(v); err != nil {
		return err
	}
	if v.RentalEnabled {
		d.rental = append(d.rental, v)
	} else {
		d.sales = append(d.sales, v)
	}
	return nil
}

// ImportRecord builds a vehicle from the record and adds it to the sales
// inventory. On any factory or inventory failure it annotates the record
// with the failure reason and reports false; nothing is raised and the
// dealership is left unchanged.
func (d *Dealership) ImportRecord(rec schema.Record) bool {
	v, err := FromRecord(rec)
	if err != nil {
		rec.SetErrorReason(err.Error())
		return false
	}
	if err := d.AddIncoming(v); err != nil {
		rec.SetErrorReason(err.Error())
		return false
	}
	return true
}

// UpdateVehicleRental flips the vehicle's rental state through its bound
// policy: enable when currently disabled, disable when enabled. On success
// the vehicle moves to the inventory matching its new state.
//
// Failures: ErrDealershipNotRenting when the dealership's rental service is
// off, ErrVehicleNotFound when the vehicle is not owned here, and whatever
// the policy refuses with (ErrRentalNotAllowed for sports cars).
func (d *Dealership) UpdateVehicleRental(v *Vehicle) error {
	if !d.RentingEnabled {
		return fmt.Errorf("%w: %s", ErrDealershipNotRenting, d.id)
	}
	if d.FindVehicle(v.ID) == nil {
		return fmt.Errorf("%w: %s", ErrVehicleNotFound, v.ID)
	}

	if err := v.SetRental(!v.RentalEnabled); err != nil {
		return err
	}

	// Drop the id from both inventories before re-inserting, so the move
	// holds even when the vehicle was not sitting in the inventory its old
	// flag suggested.
	d.sales = removeByID(d.sales, v.ID)
	d.rental = removeByID(d.rental, v.ID)
	if v.RentalEnabled {
		d.rental = append(d.rental, v)
	} else {
		d.sales = append(d.sales, v)
	}
	return nil
}

// RemoveVehicle removes the vehicle from whichever inventory holds it.
// Removing a vehicle that is not present is a deliberate no-op, so removal
// is at-most-once rather than an error.
//
// Failure: ErrEmptyInventory when both inventories are empty.
func (d *Dealership) RemoveVehicle(v *Vehicle) error {
	if len(d.sales) == 0 && len(d.rental) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyInventory, d.id)
	}
	d.sales = removeByID(d.sales, v.ID)
	d.rental = removeByID(d.rental, v.ID)
	return nil
}

// TransferTo moves the vehicle from this dealership to other. The receiver
// is validated before the sender gives the vehicle up, so a rejected
// transfer leaves the source inventory untouched.
//
// Failures: ErrDuplicateSender when other is this dealership, plus the
// receiver's AddIncoming failure set.
func (d *Dealership) TransferTo(other *Dealership, v *Vehicle) error {
	if other == d || other.id == d.id {
		return fmt.Errorf("%w: %s", ErrDuplicateSender, d.id)
	}
	if d.FindVehicle(v.ID) == nil {
		return fmt.Errorf("%w: %s", ErrVehicleNotFound, v.ID)
	}
	if err := other.acceptCheck(v); err != nil {
		return err
	}

	d.sales = removeByID(d.sales, v.ID)
	d.rental = removeByID(d.rental, v.ID)
	return other.AddIncoming(v)
}

// Records exports one record per owned vehicle, sales inventory first, each
// tagged with the dealership's identity and service flags.
func (d *Dealership) Records() []schema.Record {
	var records []schema.Record
	for _, v := range append(d.SalesInventory(), d.rental...) {
		rec := v.Record()
		rec.Put(schema.DealershipID, d.id)
		if d.Name != "" {
			rec.Put(schema.DealershipName, d.Name)
		}
		rec.Put(schema.DealershipReceiving, d.Receiving)
		rec.Put(schema.DealershipRenting, d.RentingEnabled)
		records = append(records, rec)
	}
	return records
}

// removeByID drops the vehicle with the given id, preserving order.
func removeByID(vehicles []*Vehicle, id string) []*Vehicle {
	for i, v := range vehicles {
		if v.ID == id {
			return append(vehicles[:i], vehicles[i+1:]...)
		}
	}
	return vehicles
}
