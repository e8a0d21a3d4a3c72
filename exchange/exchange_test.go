package exchange_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htsegen/exchange"
	"github.com/katalvlaran/htsegen/supercell"
)

// kagomeTemplates is the kagome example table in input order.
var kagomeTemplates = []exchange.Template{
	{Class: 0, Local: 0, Remote: 1},
	{Class: 0, Local: 0, Remote: 2},
	{Class: 0, Local: 1, Remote: 2},
	{Class: 0, Local: 0, Remote: 1, Offset: supercell.Vec{X: -1}},
	{Class: 0, Local: 1, Remote: 2, Offset: supercell.Vec{X: 1, Y: -1}},
	{Class: 0, Local: 0, Remote: 2, Offset: supercell.Vec{Y: -1}},
}

// TestParse_Kagome reads the kagome table with comments and padding.
func TestParse_Kagome(t *testing.T) {
	tb, err := exchange.Load(filepath.Join("..", "testdata", "kagome.txt"))
	require.NoError(t, err)

	if diff := cmp.Diff(kagomeTemplates, tb.Templates); diff != "" {
		t.Errorf("templates mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, tb.Sublattices())
	assert.Equal(t, []int{0}, tb.Classes())
}

// TestLoadYAML_MatchesText checks the YAML form decodes to the same table.
func TestLoadYAML_MatchesText(t *testing.T) {
	tb, err := exchange.Load(filepath.Join("..", "testdata", "kagome.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(kagomeTemplates, tb.Templates); diff != "" {
		t.Errorf("templates mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_Errors covers syntax and validation failures.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
		line  string
	}{
		{"TooFewColumns", "0 0 1 0 0\n", exchange.ErrSyntax, "line 1"},
		{"TooManyColumns", "0 0 1 0 0 0\n0 0 1 0 0 0 7\n", exchange.ErrSyntax, "line 2"},
		{"NotInteger", "0 0 1 0 x 0\n", exchange.ErrSyntax, "line 1"},
		{"Float", "0 0 1 0.5 0 0\n", exchange.ErrSyntax, "line 1"},
		{"Empty", "# nothing here\n\n", exchange.ErrEmptyTable, ""},
		{"NegativeLocal", "0 -1 1 0 0 0\n", exchange.ErrMalformedTemplate, ""},
		{"NegativeRemote", "0 0 -2 0 0 0\n", exchange.ErrMalformedTemplate, ""},
		{"NegativeClass", "-1 0 1 0 0 0\n", exchange.ErrMalformedTemplate, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := exchange.Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Parse error = %v; want %v", err, tc.err)
			}
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

// TestLoadYAML_Errors rejects short offsets and unknown keys.
func TestLoadYAML_Errors(t *testing.T) {
	cases := map[string]string{
		"ShortOffset": "templates:\n  - {class: 0, local: 0, remote: 1, offset: [1, 0]}\n",
		"UnknownKey":  "templates:\n  - {class: 0, local: 0, remote: 1, offset: [1, 0, 0], weight: 2}\n",
		"NotYAML":     "templates: [\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := exchange.LoadYAML(strings.NewReader(input))
			assert.ErrorIs(t, err, exchange.ErrSyntax)
		})
	}

	_, err := exchange.LoadYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, exchange.ErrEmptyTable)
}

// TestLoad_MissingFile wraps the os error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := exchange.Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestTable_Helpers covers Sublattices, Classes, ExchangeName and NewTable copying.
func TestTable_Helpers(t *testing.T) {
	src := []exchange.Template{
		{Class: 3, Local: 0, Remote: 4},
		{Class: 1, Local: 2, Remote: 0},
		{Class: 3, Local: 1, Remote: 1, Offset: supercell.Vec{Z: 1}},
	}
	tb := exchange.NewTable(src)
	src[0].Class = 99

	assert.Equal(t, 3, tb.Templates[0].Class)
	assert.Equal(t, 3, tb.Len())
	assert.Equal(t, 5, tb.Sublattices())
	assert.Equal(t, []int{1, 3}, tb.Classes())
	assert.Equal(t, "j1", exchange.ExchangeName(0))
	assert.Equal(t, "j4", exchange.ExchangeName(3))
	assert.Equal(t, "3 1 1 0 0 1", tb.Templates[2].String())
	assert.Equal(t, 0, (&exchange.Table{}).Sublattices())
}
