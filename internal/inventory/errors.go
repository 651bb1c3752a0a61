// =============================================================================
// Dealership Inventory - Domain Failure Set
// =============================================================================
//
// Per-record failures never abort a batch. The import seam catches each of
// these, writes its message onto the offending record's error-reason
// attribute, and moves on; callers inspect them with errors.Is when they need
// the classification rather than the text.
//
// =============================================================================

package inventory

import "errors"

var (
	// Factory failures.
	ErrInvalidVehicleType  = errors.New("invalid or missing vehicle type")
	ErrInvalidPrice        = errors.New("price is missing or not positive")
	ErrMissingCriticalInfo = errors.New("vehicle id or model is missing")

	// Dealership inventory failures.
	ErrVehicleExists        = errors.New("vehicle with this id already exists")
	ErrNotAcceptingVehicles = errors.New("dealership is not accepting vehicles")
	ErrDealershipNotRenting = errors.New("dealership does not offer rentals")
	ErrRentalNotAllowed     = errors.New("rental not allowed for this vehicle type")
	ErrVehicleNotFound      = errors.New("vehicle is not in this dealership")
	ErrDuplicateSender      = errors.New("cannot transfer a vehicle to the same dealership")
	ErrEmptyInventory       = errors.New("dealership has no vehicles")

	// Company-level record rejection.
	ErrMissingDealershipID = errors.New("record has no dealership id")
)
