// Command htsegen builds the lattice-definition file of an HTSE solver from a
// unit-cell exchange table.
//
//	htsegen kagome.txt -c 4,4,1 -f htse -l kagome -o kagome.def
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is stamped by the release build.
var version = "0.93.0"

// app carries flag values and shared dependencies for one invocation.
type app struct {
	configPath string
	cells      []int
	lattice    string
	output     string
	format     string
	classes    []int
	verbose    bool

	logger *zap.Logger
	stdout io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "htsegen FILE",
		Short: "Construct an input file for the HTSE code",
		Long: `Expands a unit-cell exchange table into the bond list of a periodic
Nx x Ny x Nz supercell.

FILE holds six integer columns per exchange:

  class  i  j  Tx Ty Tz

where i is a spin of the (0 0 0) cell, j a spin of cell (Tx Ty Tz).
Files ending in .yaml or .yml are read as YAML templates.

Example: for the kagome lattice, the file is

  0 0 1  0  0  0
  0 0 2  0  0  0
  0 1 2  0  0  0
  0 0 1 -1  0  0
  0 1 2  1 -1  0
  0 0 2  0 -1  0

Bonds that fold onto their own site in a too-small supercell are excluded
and reported.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.stdout == nil {
				a.stdout = cmd.OutOrStdout()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&a.configPath, "config", "", "YAML settings file; flags override it")
	flags.IntSliceVarP(&a.cells, "cells", "c", nil, "the number of cells along three dimensions, e.g. -c 4,4,1")
	flags.StringVarP(&a.lattice, "lattice", "l", "", `the name of the lattice (default "some lattice")`)
	flags.StringVarP(&a.output, "output", "o", "", `output path; "-" for stdout, ".zst" suffix compresses`)
	flags.StringVarP(&a.format, "format", "f", "", "output format: plain, htse or cbor (default plain)")
	flags.IntSliceVar(&a.classes, "classes", nil, "expand only these exchange classes")
	flags.BoolVar(&a.verbose, "verbose", false, "log every excluded self-bond")

	return cmd
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "htsegen:", err)
		os.Exit(1)
	}
}
