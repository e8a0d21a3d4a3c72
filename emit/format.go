package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/htsegen/lattice"
)

// Format selects an output layout.
type Format int

const (
	// FormatPlain writes "class a b" rows only.
	FormatPlain Format = iota
	// FormatHTSE writes the complete HTSE10 input file.
	FormatHTSE
	// FormatCBOR writes a deterministic CBOR document.
	FormatCBOR
)

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatHTSE:
		return "htse"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "":
		return FormatPlain, nil
	case "htse":
		return FormatHTSE, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("emit: %q: %w", name, ErrUnknownFormat)
	}
}

// Document is everything a writer needs: the resolved lattice and the
// lattice name printed in headers.
type Document struct {
	Lattice string
	Result  *lattice.Result
}

// Write renders doc to w in format f.
func Write(w io.Writer, f Format, doc Document) error {
	if doc.Result == nil {
		return ErrNilResult
	}
	switch f {
	case FormatPlain:
		return WritePlain(w, doc.Result.Bonds)
	case FormatHTSE:
		return WriteHTSE(w, doc)
	case FormatCBOR:
		return WriteCBOR(w, doc)
	default:
		return fmt.Errorf("emit: %s: %w", f, ErrUnknownFormat)
	}
}
