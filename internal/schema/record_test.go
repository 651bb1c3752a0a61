package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Put / typed getter boundary
// =============================================================================

func TestPutRejectsMismatchedTypes(t *testing.T) {
	tests := []struct {
		name   string
		attr   Attribute
		value  any
		stored bool
	}{
		{name: "string into string attr", attr: VehicleModel, value: "Model X", stored: true},
		{name: "int64 into int64 attr", attr: Price, value: int64(20000), stored: true},
		{name: "bool into bool attr", attr: DealershipRenting, value: true, stored: true},
		{name: "int64 into string attr", attr: VehicleModel, value: int64(5), stored: false},
		{name: "string into int64 attr", attr: Price, value: "20000", stored: false},
		{name: "float64 into int64 attr", attr: Price, value: float64(20000), stored: false},
		{name: "string into bool attr", attr: DealershipRenting, value: "true", stored: false},
		{name: "nil into string attr", attr: VehicleModel, value: nil, stored: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord()
			assert.Equal(t, tt.stored, rec.Put(tt.attr, tt.value))
			assert.Equal(t, tt.stored, rec.Has(tt.attr))
		})
	}
}

func TestTypedGettersRequireMatchingKind(t *testing.T) {
	rec := NewRecord()
	require.True(t, rec.Put(Price, int64(15000)))
	require.True(t, rec.Put(VehicleID, "V1"))

	n, ok := rec.GetInt64(Price)
	assert.True(t, ok)
	assert.Equal(t, int64(15000), n)

	// Asking for a stored attribute through the wrong-kinded getter yields
	// nothing rather than a panic or a cast.
	_, ok = rec.GetString(Price)
	assert.False(t, ok)
	_, ok = rec.GetInt64(VehicleID)
	assert.False(t, ok)

	// Absent attribute.
	_, ok = rec.GetBool(DealershipReceiving)
	assert.False(t, ok)
}

// =============================================================================
// IsSatisfied / MissingRequired
// =============================================================================

func completeRecord() Record {
	rec := NewRecord()
	rec.Put(DealershipID, "D1")
	rec.Put(VehicleType, "suv")
	rec.Put(VehicleModel, "X")
	rec.Put(VehicleID, "V1")
	rec.Put(Price, int64(20000))
	return rec
}

func TestIsSatisfied(t *testing.T) {
	rec := completeRecord()
	assert.True(t, rec.IsSatisfied())
	assert.Empty(t, rec.MissingRequired())

	rec.Delete(Price)
	assert.False(t, rec.IsSatisfied())
	require.Len(t, rec.MissingRequired(), 1)
	assert.Equal(t, Price, rec.MissingRequired()[0])
}

func TestErrorReasonAnnotation(t *testing.T) {
	rec := completeRecord()
	assert.Empty(t, rec.ErrorReason())

	rec.SetErrorReason("vehicle with this id already exists")
	assert.Equal(t, "vehicle with this id already exists", rec.ErrorReason())
}

func TestCloneIsIndependent(t *testing.T) {
	rec := completeRecord()
	clone := rec.Clone()

	clone.Put(VehicleModel, "Y")
	clone.SetErrorReason("bad")

	model, _ := rec.GetString(VehicleModel)
	assert.Equal(t, "X", model)
	assert.Empty(t, rec.ErrorReason())
	assert.Equal(t, rec.Len()+1, clone.Len())
}

func TestLookup(t *testing.T) {
	attr, ok := Lookup("vehicle_model")
	require.True(t, ok)
	assert.Equal(t, VehicleModel, attr)

	_, ok = Lookup("no_such_field")
	assert.False(t, ok)
}
