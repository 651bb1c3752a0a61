package sheetcodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

const sampleCSV = `dealership_id,dealership_name,vehicle_type,vehicle_model,vehicle_id,price,dealership_rental_status,unknown_column
D1,North Lot,suv,Explorer,V1,20000,yes,whatever
D1,,sedan,Jetta,V2,15000,,
`

// =============================================================================
// Decode
// =============================================================================

func TestCSVDecode(t *testing.T) {
	records, err := NewCSV().Decode([]byte(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.True(t, first.IsSatisfied())
	name, _ := first.GetString(schema.DealershipName)
	assert.Equal(t, "North Lot", name)
	price, _ := first.GetInt64(schema.Price)
	assert.Equal(t, int64(20000), price)
	renting, _ := first.GetBool(schema.DealershipRenting)
	assert.True(t, renting)

	// Empty cells mean absent attributes.
	second := records[1]
	assert.True(t, second.IsSatisfied())
	assert.False(t, second.Has(schema.DealershipName))
	assert.False(t, second.Has(schema.DealershipRenting))
}

func TestCSVDecodeToleratesBadCells(t *testing.T) {
	doc := "dealership_id,vehicle_type,vehicle_model,vehicle_id,price\n" +
		"D1,suv,X,V1,cheap\n"

	records, err := NewCSV().Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.False(t, records[0].Has(schema.Price))
	assert.False(t, records[0].IsSatisfied())
}

func TestCSVDecodeSkipsBlankRows(t *testing.T) {
	doc := "vehicle_id\nV1\n\n   \nV2\n"

	records, err := NewCSV().Decode([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCSVDecodeEmptyFile(t *testing.T) {
	_, err := NewCSV().Decode([]byte(""))
	assert.Error(t, err)
}

// =============================================================================
// Encode / round trip
// =============================================================================

func TestCSVEncodeRoundTrip(t *testing.T) {
	c := NewCSV()
	records, err := c.Decode([]byte(sampleCSV))
	require.NoError(t, err)

	data, err := c.Encode(records)
	require.NoError(t, err)

	// Only columns present somewhere survive; the unknown input column does
	// not reappear.
	header := strings.SplitN(string(data), "\n", 2)[0]
	assert.NotContains(t, header, "unknown_column")

	again, err := c.Decode(data)
	require.NoError(t, err)
	require.Len(t, again, len(records))

	for i := range records {
		for _, attr := range schema.All() {
			want, wantOK := records[i].Value(attr)
			got, gotOK := again[i].Value(attr)
			assert.Equal(t, wantOK, gotOK, attr.Name)
			assert.Equal(t, want, got, attr.Name)
		}
	}
}
