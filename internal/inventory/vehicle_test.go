package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// =============================================================================
// Type parsing
// =============================================================================

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		in   string
		want VehicleType
	}{
		{in: "sedan", want: TypeSedan},
		{in: "SUV", want: TypeSUV},
		{in: " Pickup ", want: TypePickup},
		{in: "sports car", want: TypeSportsCar},
		{in: "SportsCar", want: TypeSportsCar},
		{in: "sports_car", want: TypeSportsCar},
	}
	for _, tt := range tests {
		got, err := ParseVehicleType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseVehicleType("hovercraft")
	assert.ErrorIs(t, err, ErrInvalidVehicleType)
	_, err = ParseVehicleType("")
	assert.ErrorIs(t, err, ErrInvalidVehicleType)
}

// =============================================================================
// Factory
// =============================================================================

func TestNewVehicleFailures(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		id       string
		model    string
		price    int64
		want     error
	}{
		{name: "bad type", typeName: "boat", id: "V1", model: "X", price: 100, want: ErrInvalidVehicleType},
		{name: "zero price", typeName: "suv", id: "V1", model: "X", price: 0, want: ErrInvalidPrice},
		{name: "negative price", typeName: "suv", id: "V1", model: "X", price: -5, want: ErrInvalidPrice},
		{name: "empty id", typeName: "suv", id: " ", model: "X", price: 100, want: ErrMissingCriticalInfo},
		{name: "empty model", typeName: "suv", id: "V1", model: "", price: 100, want: ErrMissingCriticalInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.typeName, tt.id, tt.model, tt.price)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewVehicle(t *testing.T) {
	v, err := New("suv", "V1", "Explorer", 20000)
	require.NoError(t, err)

	assert.Equal(t, TypeSUV, v.Type)
	assert.Equal(t, int64(20000), v.Price)
	assert.False(t, v.RentalEnabled)
}

func TestFromRecord(t *testing.T) {
	rec := schema.NewRecord()
	rec.Put(schema.VehicleType, "sedan")
	rec.Put(schema.VehicleID, "V1")
	rec.Put(schema.VehicleModel, "Jetta")
	rec.Put(schema.Price, int64(15000))
	rec.Put(schema.VehicleManufacturer, "VW")
	rec.Put(schema.PriceUnit, "USD")
	rec.Put(schema.AcquisitionDate, int64(1700000000000))
	rec.Put(schema.VehicleRental, true)

	v, err := FromRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, TypeSedan, v.Type)
	assert.Equal(t, "VW", v.Manufacturer)
	assert.Equal(t, "USD", v.PriceUnit)
	assert.Equal(t, int64(1700000000000), v.AcquisitionMS)
	assert.True(t, v.RentalEnabled)
}

func TestFromRecordMissingCriticalFields(t *testing.T) {
	base := func() schema.Record {
		rec := schema.NewRecord()
		rec.Put(schema.VehicleType, "suv")
		rec.Put(schema.VehicleID, "V1")
		rec.Put(schema.VehicleModel, "X")
		rec.Put(schema.Price, int64(100))
		return rec
	}

	rec := base()
	rec.Delete(schema.VehicleType)
	_, err := FromRecord(rec)
	assert.ErrorIs(t, err, ErrInvalidVehicleType)

	rec = base()
	rec.Delete(schema.Price)
	_, err = FromRecord(rec)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	rec = base()
	rec.Delete(schema.VehicleID)
	_, err = FromRecord(rec)
	assert.ErrorIs(t, err, ErrMissingCriticalInfo)
}

// =============================================================================
// Rental policy
// =============================================================================

func TestRentalPolicyPerType(t *testing.T) {
	for _, typeName := range []string{"sedan", "suv", "pickup"} {
		v, err := New(typeName, "V1", "X", 100)
		require.NoError(t, err)

		require.NoError(t, v.SetRental(true))
		assert.True(t, v.RentalEnabled)
		require.NoError(t, v.SetRental(false))
		assert.False(t, v.RentalEnabled)
	}
}

func TestSportsCarRefusesRentalBothWays(t *testing.T) {
	v, err := New("sports car", "V1", "911", 90000)
	require.NoError(t, err)

	assert.ErrorIs(t, v.SetRental(true), ErrRentalNotAllowed)
	assert.False(t, v.RentalEnabled)
	assert.ErrorIs(t, v.SetRental(false), ErrRentalNotAllowed)
}

func TestVehicleRecordOmitsUnsetOptionals(t *testing.T) {
	v, err := New("pickup", "V1", "Ranger", 30000)
	require.NoError(t, err)

	rec := v.Record()
	vt, _ := rec.GetString(schema.VehicleType)
	assert.Equal(t, "pickup", vt)
	assert.False(t, rec.Has(schema.VehicleManufacturer))
	assert.False(t, rec.Has(schema.AcquisitionDate))
}
