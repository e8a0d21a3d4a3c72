package emit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/htsegen/exchange"
	"github.com/katalvlaran/htsegen/lattice"
)

// DefaultLattice is the header name used when none is given.
const DefaultLattice = "some lattice"

// WritePlain writes one "class a b" row per bond, in order.
// Complexity: O(len(bonds)).
func WritePlain(w io.Writer, bonds []lattice.Bond) error {
	bw := bufio.NewWriter(w)
	var row []byte
	for _, b := range bonds {
		row = row[:0]
		row = strconv.AppendInt(row, int64(b.Class), 10)
		row = append(row, ' ')
		row = strconv.AppendInt(row, int64(b.A), 10)
		row = append(row, ' ')
		row = strconv.AppendInt(row, int64(b.B), 10)
		row = append(row, '\n')
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteHTSE writes the HTSE10 lattice file:
//
//	# <lattice> N=<sites>, lattice NxxNyxNz,periodic boundary conditions
//	# Number of sites | Number of bonds | Number of sites in the unit cell
//	<sites> <bonds> <S>
//	# the numbers of the sites in the central unit cell
//	<0 .. S-1, one per line>
//	# Bond s1 s2
//	<n> <a> <b> j<class+1>
//	# end of file
//
// Bonds are numbered consecutively from 0 after self-bond rejection.
func WriteHTSE(w io.Writer, doc Document) error {
	res := doc.Result
	if res == nil {
		return ErrNilResult
	}
	name := doc.Lattice
	if name == "" {
		name = DefaultLattice
	}
	sc := res.Supercell

	// bufio.Writer keeps the first write error; Flush reports it.
	bw := bufio.NewWriter(w)
	fmtf := func(format string, args ...any) {
		_, _ = fmt.Fprintf(bw, format, args...)
	}
	fmtf("# %s N=%d, lattice %s,periodic boundary conditions\n", name, sc.Sites(), sc.Extents())
	fmtf("# Number of sites | Number of bonds | Number of sites in the unit cell\n")
	fmtf("%3d %3d %2d\n", sc.Sites(), len(res.Bonds), sc.Sublattices())
	fmtf("# the numbers of the sites in the central unit cell\n")
	for s := 0; s < sc.Sublattices(); s++ {
		fmtf("%3d\n", s)
	}
	fmtf("# Bond s1 s2\n")
	for i, b := range res.Bonds {
		fmtf(" %2d %2d %2d %s\n", i, b.A, b.B, exchange.ExchangeName(b.Class))
	}
	fmtf("# end of file\n")

	return bw.Flush()
}
