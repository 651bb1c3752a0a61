// =============================================================================
// Dealership Inventory - XLSX Codec (read-only)
// =============================================================================
//
// Same tabular layout as the CSV format (header row of canonical attribute
// names, one record per data row), read from the first sheet of an XLSX
// workbook. Writing is not supported; exports go through the CSV or JSON
// codecs instead.
//
// =============================================================================

package sheetcodec

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/masonday1/dealership-inventory/internal/codec"
	"github.com/masonday1/dealership-inventory/internal/schema"
)

// XLSXCodec reads the XLSX inventory format.
type XLSXCodec struct{}

// NewXLSX returns the XLSX codec.
func NewXLSX() *XLSXCodec {
	return &XLSXCodec{}
}

// Name implements codec.Codec.
func (c *XLSXCodec) Name() string { return "xlsx" }

// ReadExtensions implements codec.Codec.
func (c *XLSXCodec) ReadExtensions() []string { return []string{".xlsx"} }

// WriteExtensions implements codec.Codec. The format is read-only.
func (c *XLSXCodec) WriteExtensions() []string { return nil }

// Decode parses the first sheet into one record per data row.
func (c *XLSXCodec) Decode(data []byte) ([]schema.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("malformed XLSX workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("malformed XLSX workbook: no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("malformed XLSX workbook: missing header row")
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

// Encode implements codec.Codec; the XLSX format does not support writing.
func (c *XLSXCodec) Encode([]schema.Record) ([]byte, error) {
	return nil, fmt.Errorf("%w: xlsx", codec.ErrEncodeUnsupported)
}
