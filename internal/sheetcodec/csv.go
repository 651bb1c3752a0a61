// =============================================================================
// Dealership Inventory - CSV Codec
// =============================================================================
//
// Flat tabular rendition of the inventory: the first row holds canonical
// attribute names, each following row is one record. Empty cells mean the
// attribute is absent. Columns with headers outside the schema are ignored,
// and a cell that does not parse into its column's kind is omitted from that
// row's record rather than failing the decode.
//
// =============================================================================

package sheetcodec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// CSVCodec reads and writes the CSV inventory format.
type CSVCodec struct{}

// NewCSV returns the CSV codec.
func NewCSV() *CSVCodec {
	return &CSVCodec{}
}

// Name implements codec.Codec.
func (c *CSVCodec) Name() string { return "csv" }

// ReadExtensions implements codec.Codec.
func (c *CSVCodec) ReadExtensions() []string { return []string{".csv"} }

// WriteExtensions implements codec.Codec.
func (c *CSVCodec) WriteExtensions() []string { return []string{".csv"} }

// Decode parses the CSV into one record per data row.
func (c *CSVCodec) Decode(data []byte) ([]schema.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("malformed CSV: missing header row")
	}

	headers := rows[0]
	records := make([]schema.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		rec := schema.NewRecord()
		for i, header := range headers {
			if i >= len(row) {
				break
			}
			putCell(rec, header, row[i])
		}
		records = append(records, rec)
	}

	return records, nil
}

// Encode writes one row per record. Only columns carried by at least one
// record are emitted, in canonical attribute order.
func (c *CSVCodec) Encode(records []schema.Record) ([]byte, error) {
	columns := presentColumns(records)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, attr := range columns {
		header[i] = attr.Name
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := make([]string, len(columns))
		for i, attr := range columns {
			row[i] = cellString(rec, attr)
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// presentColumns lists the attributes present on at least one record, in
// canonical order.
func presentColumns(records []schema.Record) []schema.Attribute {
	var columns []schema.Attribute
	for _, attr := range schema.All() {
		for _, rec := range records {
			if rec.Has(attr) {
				columns = append(columns, attr)
				break
			}
		}
	}
	return columns
}

// cellString renders a record's attribute value as a cell, "" when absent.
func cellString(rec schema.Record, attr schema.Attribute) string {
	v, ok := rec.Value(attr)
	if !ok {
		return ""
	}
	switch tv := v.(type) {
	case string:
		return tv
	case int64:
		return strconv.FormatInt(tv, 10)
	case bool:
		return strconv.FormatBool(tv)
	default:
		return ""
	}
}
