package emit

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// BondTable is the CBOR document layout. Bonds are [class, a, b] triples.
type BondTable struct {
	Lattice     string   `cbor:"lattice"`
	Extents     [3]int   `cbor:"extents"`
	Sublattices int      `cbor:"sublattices"`
	Sites       int      `cbor:"sites"`
	SelfBonds   int      `cbor:"self_bonds"`
	Bonds       [][3]int `cbor:"bonds"`
}

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2), so the same
// lattice always encodes to the same bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("emit: CBOR encoder initialization failed: " + err.Error())
	}
}

// NewBondTable flattens doc into the CBOR layout.
func NewBondTable(doc Document) (*BondTable, error) {
	res := doc.Result
	if res == nil {
		return nil, ErrNilResult
	}
	name := doc.Lattice
	if name == "" {
		name = DefaultLattice
	}
	ext := res.Supercell.Extents()
	bt := &BondTable{
		Lattice:     name,
		Extents:     [3]int{ext.X, ext.Y, ext.Z},
		Sublattices: res.Supercell.Sublattices(),
		Sites:       res.Supercell.Sites(),
		SelfBonds:   res.Report.SelfBonds,
		Bonds:       make([][3]int, len(res.Bonds)),
	}
	for i, b := range res.Bonds {
		bt.Bonds[i] = [3]int{b.Class, b.A, b.B}
	}

	return bt, nil
}

// WriteCBOR encodes doc as a single CBOR BondTable.
func WriteCBOR(w io.Writer, doc Document) error {
	bt, err := NewBondTable(doc)
	if err != nil {
		return err
	}
	if err := encMode.NewEncoder(w).Encode(bt); err != nil {
		return fmt.Errorf("emit: cbor: %w", err)
	}

	return nil
}

// ReadCBOR decodes one BondTable written by WriteCBOR.
func ReadCBOR(r io.Reader) (*BondTable, error) {
	var bt BondTable
	if err := cbor.NewDecoder(r).Decode(&bt); err != nil {
		return nil, fmt.Errorf("emit: cbor: %w", err)
	}

	return &bt, nil
}
