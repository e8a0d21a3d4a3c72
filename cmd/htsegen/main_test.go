package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/htsegen/config"
	"github.com/katalvlaran/htsegen/emit"
)

// kagomePath is the shared kagome table.
var kagomePath = filepath.Join("..", "..", "testdata", "kagome.txt")

// execute runs the root command with args, capturing stdout and logs.
func execute(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	a := &app{logger: zap.New(core), stdout: &out}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()

	return out.String(), logs, err
}

func TestRun_PlainToStdout(t *testing.T) {
	out, logs, err := execute(t, kagomePath, "-c", "2,2,1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, "0 0 1", lines[0])
	assert.Equal(t, "0 9 8", lines[23])

	written := logs.FilterMessage("lattice written").All()
	require.Len(t, written, 1)
	assert.EqualValues(t, 24, written[0].ContextMap()["bonds"])
	assert.Zero(t, logs.FilterMessageSnippet("self-bonds excluded").Len())
}

func TestRun_HTSEFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kagome.def")
	_, _, err := execute(t, kagomePath, "-c", "2,2,1", "-f", "htse", "-l", "kagome", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# kagome N=12, lattice 2x2x1,periodic boundary conditions\n"))
	assert.Contains(t, text, "\n 12  24  3\n")
	assert.Contains(t, text, "\n 23  9  8 j1\n")
	assert.True(t, strings.HasSuffix(text, "# end of file\n"))
}

func TestRun_SelfBondsReported(t *testing.T) {
	input := filepath.Join(t.TempDir(), "chain.txt")
	require.NoError(t, os.WriteFile(input, []byte("0 0 0 1 0 0\n1 0 0 0 1 0\n"), 0o644))

	out, logs, err := execute(t, input, "-c", "1,3,1")
	require.NoError(t, err)

	assert.Equal(t, "1 0 1\n1 1 2\n1 2 0\n", out)
	warn := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessageSnippet("3 self-bonds excluded").All()
	require.Len(t, warn, 1)
	assert.EqualValues(t, 3, warn[0].ContextMap()["self_bonds"])
	assert.Equal(t, 3, logs.FilterMessage("self-bond excluded").Len())
}

func TestRun_ConfigFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "kagome.cbor")
	cfgPath := filepath.Join(dir, "htsegen.yaml")
	cfg := config.DefaultConfig()
	cfg.Cells = []int{1, 1, 1}
	cfg.Format = "cbor"
	cfg.Lattice = "kagome"
	cfg.Output = out
	require.NoError(t, cfg.Save(cfgPath))

	// The flag wins over the file's 1x1x1.
	_, _, err := execute(t, kagomePath, "--config", cfgPath, "-c", "3,3,1")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	bt, err := emit.ReadCBOR(f)
	require.NoError(t, err)
	assert.Equal(t, "kagome", bt.Lattice)
	assert.Equal(t, [3]int{3, 3, 1}, bt.Extents)
	assert.Len(t, bt.Bonds, 54)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"NoCells", []string{kagomePath}, "cells needs 3 values"},
		{"ZeroExtent", []string{kagomePath, "-c", "2,0,1"}, "extent must be positive"},
		{"BadFormat", []string{kagomePath, "-c", "1,1,1", "-f", "xml"}, "unknown format"},
		{"MissingInput", []string{"nope.txt", "-c", "1,1,1"}, "no such file"},
		{"NoArgs", []string{"-c", "1,1,1"}, "accepts 1 arg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Empty(t, out)
		})
	}
}

func TestRun_MalformedTemplateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.txt")
	output := filepath.Join(dir, "out.def")
	require.NoError(t, os.WriteFile(input, []byte("0 0 -1 0 0 0\n"), 0o644))

	_, _, err := execute(t, input, "-c", "2,2,2", "-o", output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed template")
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LoggingConfig{Level: "warn", Format: "json"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = newLogger(config.LoggingConfig{Level: "warn", Format: "console"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger(config.LoggingConfig{Level: "loud", Format: "json"}, false)
	assert.Error(t, err)
}
