// =============================================================================
// Dealership Inventory - Codec Contract
// =============================================================================
//
// A Codec translates between a file format's bytes and a list of schema
// records. Decode fails only on structural problems (malformed syntax); any
// row-level problem is handled by omitting the offending attribute from that
// row's record, to be caught later by the schema's required-field checks.
// Encode is defined only for formats that support writing; a format signals
// read-only support by exposing zero write extensions.
//
// =============================================================================

package codec

import (
	"errors"
	"strings"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// Mode is the direction a file is opened for.
type Mode int

const (
	ModeRead Mode = iota + 1
	ModeWrite
)

// String returns the single-letter form of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "r"
	case ModeWrite:
		return "w"
	default:
		return "?"
	}
}

// Classified structural errors. These abort a whole operation; no partial
// result is produced alongside them.
var (
	// ErrBadMode means the open mode was neither read nor write.
	ErrBadMode = errors.New("unsupported open mode")

	// ErrPathNotFound means a file opened for read does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrBadExtension means no registered codec claims the path's extension
	// for the requested mode.
	ErrBadExtension = errors.New("unsupported file extension")

	// ErrEncodeUnsupported is returned by Encode on read-only formats.
	ErrEncodeUnsupported = errors.New("encoding not supported for this format")
)

// ParseMode parses "r" or "w" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r":
		return ModeRead, nil
	case "w":
		return ModeWrite, nil
	default:
		return 0, ErrBadMode
	}
}

// Codec is a bidirectional translator between file bytes and records.
type Codec interface {
	// Name identifies the codec in logs and error messages.
	Name() string

	// ReadExtensions lists the file extensions (with leading dot, lowercase)
	// this codec claims for reading. Empty means the format cannot be read.
	ReadExtensions() []string

	// WriteExtensions lists the extensions claimed for writing. Empty means
	// the format is read-only.
	WriteExtensions() []string

	// Decode parses the file bytes into records. It fails as a whole only on
	// structural errors; per-row problems surface as missing attributes on
	// the affected records.
	Decode(data []byte) ([]schema.Record, error)

	// Encode renders records to file bytes, emitting only the attributes
	// present on each record. Read-only formats return ErrEncodeUnsupported.
	Encode(records []schema.Record) ([]byte, error)
}
