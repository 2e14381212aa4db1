// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metapath/flowmod"
	"github.com/katalvlaran/metapath/genome"
	"github.com/katalvlaran/metapath/internal/config"
	"github.com/katalvlaran/metapath/internal/observability"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/sbml"
	"github.com/katalvlaran/metapath/search"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// persistent flags
	configPath  string
	aliasesPath string
	sbmlPath    string
	modsPath    string
	outputPath  string

	cfg     *config.Config
	log     zerolog.Logger
	reg     *prometheus.Registry
	metrics *observability.SearchMetrics
	out     io.Writer
	closer  io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "metapath",
		Short: "Find pathways through a metabolic map",
		Long: `metapath loads an Escher-style metabolic map, resolves its gene rules
against a genome alias table and answers pathway, distance and
connectivity queries. Results are written as tab-separated tables.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.aliasesPath, "aliases", "", "tab-separated feature alias table")
	flags.StringVar(&a.sbmlPath, "sbml", "", "SBML file whose reactions are imported into the map")
	flags.StringVar(&a.modsPath, "mods", "", "flow modifier list (.tbl, .json or .yaml)")
	flags.StringVarP(&a.outputPath, "output", "o", "", "write the report to this file instead of stdout")
	flags.StringSlice("commons", nil, "extra common compounds")
	flags.Int("max-len", model.DefaultMaxPathLen, "maximum pathway length")
	flags.Int("max-successors", model.DefaultMaxSuccessors, "successor count above which a compound is common")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	flags.String("metrics-file", "", "write search metrics in Prometheus text format to this file")

	root.AddCommand(
		newPathwayCmd(a),
		newDistanceCmd(a),
		newStatsCmd(a),
		newReactionsCmd(a),
		newTriggeredCmd(a),
		newCompoundsCmd(a),
		newConnectivityCmd(a),
	)

	return root
}

// setup loads the configuration, builds the logger and opens the output.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = observability.NewLogger(cfg.LogConfig())
	a.reg = prometheus.NewRegistry()
	a.metrics = observability.NewSearchMetrics(a.reg)

	a.out = cmd.OutOrStdout()
	if a.outputPath != "" {
		f, err := os.Create(a.outputPath)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		a.out, a.closer = f, f
	}

	return nil
}

// teardown closes the output and dumps metrics.
func (a *app) teardown(*cobra.Command, []string) error {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	if file := a.cfg.Metrics.File; file != "" {
		if err := prometheus.WriteToTextfile(file, a.reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Debug().Str("file", file).Msg("metrics written")
	}

	return nil
}

// loadModel reads the map and applies the optional alias table, SBML
// import and flow modifiers, in that order.
func (a *app) loadModel(mapPath string) (*model.Model, error) {
	var aliases model.AliasSource
	if a.aliasesPath != "" {
		f, err := os.Open(a.aliasesPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		table, err := genome.ReadAliases(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.aliasesPath, err)
		}
		aliases = table
	}

	opts := append(a.cfg.ModelOptions(), model.WithLogger(a.log))
	m, err := model.LoadFile(mapPath, aliases, opts...)
	if err != nil {
		return nil, err
	}

	if a.sbmlPath != "" {
		added, err := sbml.ImportFile(m, a.sbmlPath)
		if err != nil {
			return nil, err
		}
		a.log.Info().Int("added", added).Str("file", a.sbmlPath).Msg("SBML reactions imported")
	}
	if a.modsPath != "" {
		mods, err := flowmod.LoadFile(a.modsPath, flowmod.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		mods.Apply(m)
	}

	return m, nil
}

// engine builds a search engine over m with the configured options.
func (a *app) engine(cmd *cobra.Command, m *model.Model) (*search.Engine, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := append(a.cfg.SearchOptions(),
		search.WithLogger(a.log),
		search.WithMetrics(a.metrics),
		search.WithContext(ctx),
	)

	return search.New(m, opts...)
}
