// =============================================================================
// Dealership Inventory - XML Codec (read-only)
// =============================================================================
//
// File shape: a root element containing repeated Dealer elements, each
// containing repeated Vehicle elements. Fields may appear as attributes or as
// scalar child elements on either level. Tag and attribute names are mapped
// onto schema attributes through an alias table specific to this format; the
// names are not the JSON field names.
//
// Decode walks the tree accumulating a per-dealer sub-record, and emits one
// record per Vehicle element by merging the dealer sub-record (dealer fields
// act as defaults) with the vehicle-local fields. Unknown tags and attributes
// are ignored, and a value that does not parse into its attribute's kind is
// simply omitted from the record. The format is read-only: the codec claims
// no write extensions and Encode reports the capability error.
//
// =============================================================================

package xmlcodec

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/masonday1/dealership-inventory/internal/codec"
	"github.com/masonday1/dealership-inventory/internal/schema"
)

// Alias tables from XML names (lowercased) to schema attributes. Dealer and
// Vehicle levels have separate tables because "id" means a different
// attribute on each.
var (
	dealerAliases = map[string]schema.Attribute{
		"id":        schema.DealershipID,
		"name":      schema.DealershipName,
		"receiving": schema.DealershipReceiving,
		"renting":   schema.DealershipRenting,
	}

	vehicleAliases = map[string]schema.Attribute{
		"id":         schema.VehicleID,
		"type":       schema.VehicleType,
		"make":       schema.VehicleManufacturer,
		"model":      schema.VehicleModel,
		"price":      schema.Price,
		"price_unit": schema.PriceUnit,
	}
)

// Codec reads the hierarchical XML inventory format.
type Codec struct{}

// New returns the XML codec.
func New() *Codec {
	return &Codec{}
}

// Name implements codec.Codec.
func (c *Codec) Name() string { return "xml" }

// ReadExtensions implements codec.Codec.
func (c *Codec) ReadExtensions() []string { return []string{".xml"} }

// WriteExtensions implements codec.Codec. The format is read-only.
func (c *Codec) WriteExtensions() []string { return nil }

// element is a generic XML tree node; decoding into it keeps the walk
// tolerant of tags outside the known vocabulary.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Decode walks the document tree and emits one record per Vehicle element.
func (c *Codec) Decode(data []byte) ([]schema.Record, error) {
	var root element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("malformed XML document: %w", err)
	}

	var records []schema.Record
	for _, child := range root.Children {
		if !strings.EqualFold(child.XMLName.Local, "Dealer") {
			continue
		}
		records = append(records, decodeDealer(child)...)
	}

	return records, nil
}

// Encode implements codec.Codec; the XML format does not support writing.
func (c *Codec) Encode([]schema.Record) ([]byte, error) {
	return nil, fmt.Errorf("%w: xml", codec.ErrEncodeUnsupported)
}

// decodeDealer builds the dealer sub-record, then merges it into one record
// per Vehicle child.
func decodeDealer(dealer element) []schema.Record {
	base := schema.NewRecord()
	applyFields(base, dealer, dealerAliases)

	var records []schema.Record
	for _, child := range dealer.Children {
		if !strings.EqualFold(child.XMLName.Local, "Vehicle") {
			continue
		}
		rec := base.Clone()
		applyFields(rec, child, vehicleAliases)
		records = append(records, rec)
	}

	return records
}

// applyFields stores el's attributes and scalar child elements onto rec
// through the alias table. Names outside the table and values that do not
// parse are skipped.
func applyFields(rec schema.Record, el element, aliases map[string]schema.Attribute) {
	for _, attr := range el.Attrs {
		putAliased(rec, aliases, attr.Name.Local, attr.Value)
	}
	for _, child := range el.Children {
		if len(child.Children) > 0 {
			continue // only scalar children carry field values
		}
		putAliased(rec, aliases, child.XMLName.Local, strings.TrimSpace(child.Text))
	}
}

// putAliased resolves name through the alias table, parses raw into the
// attribute's kind, and stores it. Any failure leaves the record unchanged.
func putAliased(rec schema.Record, aliases map[string]schema.Attribute, name, raw string) {
	attr, ok := aliases[strings.ToLower(name)]
	if !ok {
		return
	}
	if v, ok := parseValue(raw, attr.Kind); ok {
		rec.Put(attr, v)
	}
}

// parseValue converts XML text into a typed value for the given kind.
func parseValue(raw string, kind schema.Kind) (any, bool) {
	switch kind {
	case schema.KindString:
		if raw == "" {
			return nil, false
		}
		return raw, true
	case schema.KindInt64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case schema.KindBool:
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
		if err != nil {
			return nil, false
		}
		return b, true
	default:
		return nil, false
	}
}
