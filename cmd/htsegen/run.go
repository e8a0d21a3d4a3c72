package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/htsegen/config"
	"github.com/katalvlaran/htsegen/emit"
	"github.com/katalvlaran/htsegen/exchange"
	"github.com/katalvlaran/htsegen/lattice"
)

// settings merges the config file (if any) with explicitly set flags.
func (a *app) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("cells") {
		cfg.Cells = a.cells
	}
	if flags.Changed("lattice") {
		cfg.Lattice = a.lattice
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("classes") {
		cfg.Classes = a.classes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run loads the table, expands it and writes the result. Nothing is written
// if any step before emission fails.
func (a *app) run(cmd *cobra.Command, input string) error {
	cfg, err := a.settings(cmd)
	if err != nil {
		return err
	}
	if a.logger == nil {
		if a.logger, err = newLogger(cfg.Logging, a.verbose); err != nil {
			return err
		}
	}
	log := a.logger

	ext, _ := cfg.Extents()
	format, _ := emit.ParseFormat(cfg.Format)

	tb, err := exchange.Load(input)
	if err != nil {
		return err
	}
	log.Debug("exchange table loaded",
		zap.String("file", input),
		zap.Int("templates", tb.Len()),
		zap.Int("sublattices", tb.Sublattices()),
		zap.Ints("classes", tb.Classes()))

	opts := []lattice.Option{
		lattice.WithSelfBondHook(func(c lattice.Candidate) {
			log.Debug("self-bond excluded",
				zap.Int("template", c.Template),
				zap.String("cell", c.Cell.String()),
				zap.Int("site", c.A),
				zap.String("wraps", c.Wraps.String()))
		}),
	}
	if len(cfg.Classes) > 0 {
		opts = append(opts, lattice.WithClasses(cfg.Classes...))
	}

	res, err := lattice.Build(tb, ext, opts...)
	if err != nil {
		return err
	}
	rep := res.Report
	if rep.SelfBonds > 0 {
		log.Warn(fmt.Sprintf("%d self-bonds excluded; the supercell may be too small for the interaction range", rep.SelfBonds),
			zap.Stringer("cells", ext),
			zap.Int("self_bonds", rep.SelfBonds))
	}
	if rep.Aliased > 0 {
		log.Info("periodic images alias earlier bonds",
			zap.Stringer("cells", ext),
			zap.Int("aliased", rep.Aliased))
	}
	if comps := res.Components(); len(comps) > 1 {
		log.Warn("lattice is not connected", zap.Int("components", len(comps)))
	}

	doc := emit.Document{Lattice: cfg.Lattice, Result: res}
	if cfg.ToStdout() {
		err = emit.Write(a.stdout, format, doc)
	} else {
		err = emit.WriteFile(cfg.Output, format, doc)
	}
	if err != nil {
		return err
	}

	log.Info("lattice written",
		zap.String("output", cfg.Output),
		zap.Stringer("format", format),
		zap.Stringer("cells", ext),
		zap.Int("sites", res.Supercell.Sites()),
		zap.Int("bonds", len(res.Bonds)),
		zap.String("digest", res.Digest().Short()))

	return nil
}
