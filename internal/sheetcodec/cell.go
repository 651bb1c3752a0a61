package sheetcodec

import (
	"strconv"
	"strings"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// putCell resolves a header to a schema attribute, parses the cell into the
// attribute's kind, and stores it on the record. Unknown headers, empty
// cells, and unparseable values are skipped; the missing attribute is caught
// downstream by the required-field check.
func putCell(rec schema.Record, header, cell string) {
	attr, ok := schema.Lookup(strings.TrimSpace(header))
	if !ok {
		return
	}

	cell = strings.TrimSpace(cell)
	if cell == "" {
		return
	}

	switch attr.Kind {
	case schema.KindString:
		rec.Put(attr, cell)
	case schema.KindInt64:
		if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
			rec.Put(attr, n)
		}
	case schema.KindBool:
		if b, ok := parseBoolCell(cell); ok {
			rec.Put(attr, b)
		}
	}
}

// parseBoolCell accepts the spreadsheet boolean spellings users actually
// produce: true/false, yes/no, t/f, y/n, 1/0.
func parseBoolCell(cell string) (bool, bool) {
	switch strings.ToLower(cell) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	default:
		return false, false
	}
}

// rowEmpty reports whether every cell in the row is blank.
func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
