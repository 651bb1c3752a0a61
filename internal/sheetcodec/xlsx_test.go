package sheetcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/masonday1/dealership-inventory/internal/codec"
	"github.com/masonday1/dealership-inventory/internal/schema"
)

// buildWorkbook writes rows into a fresh single-sheet workbook and returns
// the serialized bytes.
func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestXLSXDecode(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"dealership_id", "vehicle_type", "vehicle_model", "vehicle_id", "price", "vehicle_rental_status"},
		{"D1", "suv", "Explorer", "V1", 20000, "true"},
		{"D1", "sports car", "911", "V2", 90000, ""},
	})

	records, err := NewXLSX().Decode(data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.True(t, first.IsSatisfied())
	price, _ := first.GetInt64(schema.Price)
	assert.Equal(t, int64(20000), price)
	rental, _ := first.GetBool(schema.VehicleRental)
	assert.True(t, rental)

	second := records[1]
	assert.True(t, second.IsSatisfied())
	vt, _ := second.GetString(schema.VehicleType)
	assert.Equal(t, "sports car", vt)
	assert.False(t, second.Has(schema.VehicleRental))
}

func TestXLSXDecodeIgnoresUnknownColumns(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"vehicle_id", "favorite_color"},
		{"V1", "green"},
	})

	records, err := NewXLSX().Decode(data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Len())
}

func TestXLSXDecodeMalformedWorkbook(t *testing.T) {
	_, err := NewXLSX().Decode([]byte("this is not a zip archive"))
	assert.Error(t, err)
}

func TestXLSXFormatIsReadOnly(t *testing.T) {
	c := NewXLSX()
	assert.Empty(t, c.WriteExtensions())

	_, err := c.Encode(nil)
	assert.ErrorIs(t, err, codec.ErrEncodeUnsupported)
}
