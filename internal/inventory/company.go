// =============================================================================
// Dealership Inventory - Company
// =============================================================================
//
// The company is the root aggregate: it owns every dealership and,
// transitively, every vehicle. It resolves incoming records to the right
// dealership (creating one on first reference) and implements the batch
// merge: records that fail are annotated and collected, records that succeed
// are durably merged, and the batch never aborts part-way.
//
// Ordering rule for new dealerships: the service flags carried by the record
// that introduced a dealership are deferred until every vehicle record in
// the batch has been attempted. Applying them immediately could switch
// receiving off and reject the very vehicles whose records introduced the
// dealership. The first encountered record's flags win; conflicting flags on
// later records in the same batch are ignored.
//
// =============================================================================

package inventory

import (
	"fmt"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// Company owns the set of dealerships, unique by id.
type Company struct {
	dealerships []*Dealership
}

// NewCompany returns a company with no dealerships.
func NewCompany() *Company {
	return &Company{}
}

// AddDealership registers a dealership. Adding an id that already exists
// reports failure and leaves the company unchanged.
func (c *Company) AddDealership(d *Dealership) bool {
	if c.FindDealership(d.ID()) != nil {
		return false
	}
	c.dealerships = append(c.dealerships, d)
	return true
}

// FindDealership returns the dealership with the given id, or nil.
func (c *Company) FindDealership(id string) *Dealership {
	for _, d := range c.dealerships {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// Dealerships returns the dealerships in creation order.
func (c *Company) Dealerships() []*Dealership {
	out := make([]*Dealership, len(c.dealerships))
	copy(out, c.dealerships)
	return out
}

// DealershipIDs lists every dealership id in creation order.
func (c *Company) DealershipIDs() []string {
	ids := make([]string, len(c.dealerships))
	for i, d := range c.dealerships {
		ids[i] = d.ID()
	}
	return ids
}

// DealershipIndex returns the position of the dealership with the given id,
// or -1 when absent.
func (c *Company) DealershipIndex(id string) int {
	for i, d := range c.dealerships {
		if d.ID() == id {
			return i
		}
	}
	return -1
}

// VehicleCount returns the number of vehicles owned across all dealerships.
func (c *Company) VehicleCount() int {
	total := 0
	for _, d := range c.dealerships {
		total += d.VehicleCount()
	}
	return total
}

// pendingFlags holds the deferred service flags for a dealership created
// during the current batch. Nil pointers mean the creating record did not
// carry that flag.
type pendingFlags struct {
	dealership *Dealership
	receiving  *bool
	renting    *bool
}

// ImportRecords merges a batch of records and returns the records that
// failed, each annotated with its failure reason. Successful records are
// already merged when this returns; a failing record never corrupts the
// company.
func (c *Company) ImportRecords(records []schema.Record) []schema.Record {
	var bad []schema.Record
	var deferred []pendingFlags

	for _, rec := range records {
		id, ok := rec.GetString(schema.DealershipID)
		if !ok || id == "" {
			rec.SetErrorReason(ErrMissingDealershipID.Error())
			bad = append(bad, rec)
			continue
		}

		d := c.FindDealership(id)
		if d == nil {
			d = c.createFromRecord(id, rec)
			deferred = append(deferred, capturePending(d, rec))
		}

		if !d.ImportRecord(rec) {
			bad = append(bad, rec)
		}
	}

	// Apply the deferred flags only after every vehicle record in the batch
	// has been attempted.
	for _, p := range deferred {
		if p.receiving != nil {
			p.dealership.SetReceiving(*p.receiving)
		}
		if p.renting != nil {
			p.dealership.SetRentingEnabled(*p.renting)
		}
	}

	return bad
}

// createFromRecord creates a dealership on first reference. The name comes
// from the creating record when present; the service flags are deferred.
func (c *Company) createFromRecord(id string, rec schema.Record) *Dealership {
	name, _ := rec.GetString(schema.DealershipName)
	d := NewDealership(id, name)
	c.dealerships = append(c.dealerships, d)
	return d
}

func capturePending(d *Dealership, rec schema.Record) pendingFlags {
	p := pendingFlags{dealership: d}
	if receiving, ok := rec.GetBool(schema.DealershipReceiving); ok {
		p.receiving = &receiving
	}
	if renting, ok := rec.GetBool(schema.DealershipRenting); ok {
		p.renting = &renting
	}
	return p
}

// Records flattens the whole company back into records, one per vehicle, or
// nil when the company owns no vehicles.
func (c *Company) Records() []schema.Record {
	var records []schema.Record
	for _, d := range c.dealerships {
		records = append(records, d.Records()...)
	}
	return records
}

// TransferVehicle moves a vehicle between two dealerships looked up by id.
// Convenience wrapper over Dealership.TransferTo for callers that work with
// ids rather than instances.
func (c *Company) TransferVehicle(fromID, toID, vehicleID string) error {
	from := c.FindDealership(fromID)
	if from == nil {
		return fmt.Errorf("source dealership %q not found", fromID)
	}
	to := c.FindDealership(toID)
	if to == nil {
		return fmt.Errorf("target dealership %q not found", toID)
	}
	v := from.FindVehicle(vehicleID)
	if v == nil {
		return fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
	}
	return from.TransferTo(to, v)
}
