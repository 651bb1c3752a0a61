// =============================================================================
// Dealership Inventory - Codec Registry
// =============================================================================
//
// The registry dispatches a (path, mode) pair to the codec that claims the
// path's extension for that mode. Registration is a one-time setup step done
// by the caller at startup; per-call logic only matches extensions and
// performs the classified existence/mode checks.
//
// =============================================================================

package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/masonday1/dealership-inventory/internal/schema"
)

// Registry holds an ordered list of codecs, checked linearly on open.
type Registry struct {
	codecs []Codec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a codec. Registering the same codec name twice is a no-op,
// so setup code may run more than once without duplicating dispatch entries.
func (r *Registry) Register(c Codec) {
	for _, existing := range r.codecs {
		if existing.Name() == c.Name() {
			return
		}
	}
	r.codecs = append(r.codecs, c)
}

// Codecs returns the registered codecs in registration order.
func (r *Registry) Codecs() []Codec {
	out := make([]Codec, len(r.codecs))
	copy(out, r.codecs)
	return out
}

// Open selects the codec for path under the given mode.
//
// Classified failures:
//   - ErrBadMode if mode is neither ModeRead nor ModeWrite
//   - ErrPathNotFound if mode is read and the path does not exist
//   - ErrBadExtension if no codec claims the extension for that mode
func (r *Registry) Open(path string, mode Mode) (Codec, error) {
	if mode != ModeRead && mode != ModeWrite {
		return nil, fmt.Errorf("%w: %q", ErrBadMode, mode)
	}

	if mode == ModeRead {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range r.codecs {
		if matchExtension(extensionsFor(c, mode), ext) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q for mode %s", ErrBadExtension, ext, mode)
}

// ReadRecords opens path for reading, reads it fully, and decodes it.
func (r *Registry) ReadRecords(path string) ([]schema.Record, error) {
	c, err := r.Open(path, ModeRead)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	records, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return records, nil
}

// WriteRecords encodes records with the codec claiming path's extension for
// writing and writes the result to path.
func (r *Registry) WriteRecords(path string, records []schema.Record) error {
	c, err := r.Open(path, ModeWrite)
	if err != nil {
		return err
	}

	data, err := c.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func extensionsFor(c Codec, mode Mode) []string {
	if mode == ModeRead {
		return c.ReadExtensions()
	}
	return c.WriteExtensions()
}

func matchExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
