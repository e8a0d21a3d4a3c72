package lattice_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htsegen/exchange"
)

// loadTable reads a template table from the shared testdata directory.
func loadTable(t testing.TB, name string) *exchange.Table {
	t.Helper()
	tb, err := exchange.Load(filepath.Join("..", "testdata", name))
	require.NoError(t, err)

	return tb
}
