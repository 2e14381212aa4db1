// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metapath/filter"
	"github.com/katalvlaran/metapath/internal/observability"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/pathway"
	"github.com/katalvlaran/metapath/report"
)

// noPathway is printed when a query has no answer.
const noPathway = "No pathway found."

// errLoopOrigin rejects --loop on a loaded pathway with no --origin.
var errLoopOrigin = errors.New("--loop with --load needs --origin")

type pathwayFlags struct {
	filterKind string
	include    []string
	avoid      []string
	loop       bool
	loadPath   string
	origin     string
	savePath   string
	inputsPath string
	trigPath   string
	branchPath string
}

func newPathwayCmd(a *app) *cobra.Command {
	f := &pathwayFlags{}
	cmd := &cobra.Command{
		Use:   "pathway MAP FROM TO [TO...]",
		Short: "Find the shortest pathway through one or more compounds",
		Long: `Find the shortest pathway from FROM to the first TO, then extend it to
each further TO in turn.

With --load the saved pathway replaces the search from FROM; every
remaining argument is a further target. With --loop the result is
brought back to its origin. --inputs, --triggers and --branches write
the side tables of the result to files.

Examples:
  metapath pathway map.json succ_c icit_c
  metapath pathway map.json icit_c mal__L_c --filter reactions --include CITL
  metapath pathway map.json --load saved.json akg_c --loop --origin succ_c
  metapath pathway map.json succ_c icit_c --inputs in.tsv --triggers genes.tsv`,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.loadPath != "" {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.MinimumNArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPathway(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.filterKind, "filter", "", "filter type: none, reactions (include) or avoid; implied by --include/--avoid")
	flags.StringSliceVar(&f.include, "include", nil, "reactions the pathway must contain")
	flags.StringSliceVar(&f.avoid, "avoid", nil, "compounds the pathway must not produce")
	flags.BoolVar(&f.loop, "loop", false, "bring the pathway back to its origin")
	flags.StringVar(&f.loadPath, "load", "", "start from a saved pathway")
	flags.StringVar(&f.origin, "origin", "", "compound --loop returns to")
	flags.StringVar(&f.savePath, "save", "", "save the resulting pathway as JSON")
	flags.StringVar(&f.inputsPath, "inputs", "", "write the ancillary inputs of the pathway to this file")
	flags.StringVar(&f.trigPath, "triggers", "", "write the genes and features of every step to this file")
	flags.StringVar(&f.branchPath, "branches", "", "write the side reactions of every intermediate to this file")

	return cmd
}

// filters builds the filters named by the flags.
func (f *pathwayFlags) filters(cat filter.Catalog) ([]filter.Filter, error) {
	params := filter.Params{Include: f.include, Avoid: f.avoid, Model: cat}
	if f.filterKind != "" {
		kind, err := filter.ParseKind(f.filterKind)
		if err != nil {
			return nil, err
		}
		flt, err := filter.New(kind, params)
		if err != nil {
			return nil, err
		}
		return []filter.Filter{flt}, nil
	}

	var out []filter.Filter
	if len(f.include) > 0 {
		flt, err := filter.NewInclude(params)
		if err != nil {
			return nil, err
		}
		out = append(out, flt)
	}
	if len(f.avoid) > 0 {
		flt, err := filter.NewAvoid(params)
		if err != nil {
			return nil, err
		}
		out = append(out, flt)
	}

	return out, nil
}

func (a *app) runPathway(cmd *cobra.Command, f *pathwayFlags, args []string) error {
	if f.loop && f.loadPath != "" && f.origin == "" {
		return errLoopOrigin
	}

	m, err := a.loadModel(args[0])
	if err != nil {
		return err
	}
	filters, err := f.filters(m)
	if err != nil {
		return err
	}
	e, err := a.engine(cmd, m)
	if err != nil {
		return err
	}

	// 1) Starting pathway: loaded, or searched from FROM to the first TO.
	var (
		p       *pathway.Pathway
		ok      bool
		start   string
		targets []string
	)
	if f.loadPath != "" {
		if p, err = loadPathway(f.loadPath, m); err != nil {
			return err
		}
		start, targets = f.origin, args[1:]
		if start == "" {
			if origin := p.Origin(); len(origin) > 0 {
				start = origin[0]
			}
		}
	} else {
		start, targets = args[1], args[3:]
		log := observability.WithQueryContext(a.log, start, args[2])
		log.Info().Msg("searching")
		if p, ok = e.GetPathway(start, args[2], filters...); !ok {
			return a.none()
		}
	}

	// 2) Extend through every further target.
	for _, to := range targets {
		if p, ok = e.ExtendPathway(p, to, filters...); !ok {
			return a.none()
		}
	}

	// 3) Close the loop.
	if f.loop {
		origin := f.origin
		if origin == "" {
			origin = start
		}
		if p, ok = e.LoopPathway(p, origin, filters...); !ok {
			return a.none()
		}
	}

	if f.savePath != "" {
		if err := savePathway(f.savePath, p); err != nil {
			return err
		}
	}
	if err := report.Pathway(a.out, p, start); err != nil {
		return err
	}

	return writeSideTables(f, m, p, start)
}

// writeSideTables writes each side table whose file flag is set.
func writeSideTables(f *pathwayFlags, m *model.Model, p *pathway.Pathway, start string) error {
	tables := []struct {
		path  string
		write func(io.Writer) error
	}{
		{f.inputsPath, func(w io.Writer) error { return report.PathwayInputs(w, p, start, m.Commons()) }},
		{f.trigPath, func(w io.Writer) error { return report.PathwayTriggers(w, p, m) }},
		{f.branchPath, func(w io.Writer) error { return report.Branches(w, p, m) }},
	}
	for _, t := range tables {
		if t.path == "" {
			continue
		}
		if err := writeFile(t.path, t.write); err != nil {
			return err
		}
	}

	return nil
}

// none reports the absence of a pathway as a normal outcome.
func (a *app) none() error {
	_, err := fmt.Fprintln(a.out, noPathway)

	return err
}

func loadPathway(path string, res pathway.Resolver) (*pathway.Pathway, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := pathway.Load(f, res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

func savePathway(path string, p *pathway.Pathway) error {
	return writeFile(path, p.Save)
}

// writeFile creates path and fills it with write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
