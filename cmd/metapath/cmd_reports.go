// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metapath/core"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/pathmap"
	"github.com/katalvlaran/metapath/report"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance MAP TARGET",
		Short: "List how many reactions away from TARGET every compound is",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			e, err := a.engine(cmd, m)
			if err != nil {
				return err
			}
			dist, err := e.Paint(args[1])
			if err != nil {
				return err
			}
			return report.Distances(a.out, dist)
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats MAP",
		Short: "List successor counts per compound, flagging common compounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			return report.SuccessorStats(a.out, m)
		},
	}
}

// reactionQueries are the listings of the reactions command.
var reactionQueries = map[string]func(m *model.Model, key string) []*core.Reaction{
	"producer": func(m *model.Model, c string) []*core.Reaction { return m.Producers(c) },
	"consumer": func(m *model.Model, c string) []*core.Reaction { return m.Successors(c) },
	"trigger":  func(m *model.Model, fid string) []*core.Reaction { return m.ReactionsFor(fid) },
	"orphan":   func(m *model.Model, _ string) []*core.Reaction { return m.Orphans() },
}

func newReactionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reactions MAP TYPE [KEY]",
		Short: "List reactions: producer COMPOUND, consumer COMPOUND, trigger FID or orphan",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			kind := strings.ToLower(args[1])
			query, ok := reactionQueries[kind]
			if !ok {
				return fmt.Errorf("unknown reaction listing %q: want producer, consumer, trigger or orphan", args[1])
			}
			key := ""
			if len(args) == 3 {
				key = args[2]
			} else if kind != "orphan" {
				return fmt.Errorf("%s listing needs a key", kind)
			}
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			return report.Reactions(a.out, query(m, key))
		},
	}
}

func newTriggeredCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "triggered MAP FID [FID...]",
		Short: "List the reactions triggered by each feature",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			return report.Triggered(a.out, m, args[1:])
		},
	}
}

func newCompoundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compounds MAP",
		Short: "List every compound with its connectivity and map location",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			return report.Compounds(a.out, m)
		},
	}
}

func newConnectivityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connectivity MAP",
		Short: "Score compounds by how many shortest pathways pass through them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadModel(args[0])
			if err != nil {
				return err
			}
			pm, err := pathmap.Build(m,
				pathmap.WithContext(cmd.Context()),
				pathmap.WithMaxPathLen(a.cfg.Search.MaxPathLen),
				pathmap.WithLogger(a.log),
			)
			if err != nil {
				return err
			}
			return report.Connectivity(a.out, pm)
		},
	}
}
