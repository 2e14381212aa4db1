// SPDX-License-Identifier: MIT

package report

import (
	"cmp"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/metapath/core"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/pathmap"
	"github.com/katalvlaran/metapath/pathway"
)

// mainInput picks the compound the first step of p consumes on the main
// line: hint when the step consumes it, otherwise the first compound of
// the pathway's origin.
func mainInput(p *pathway.Pathway, hint string) string {
	if p.Len() == 0 {
		return ""
	}
	if hint != "" && p.First().Consumes(hint) {
		return hint
	}
	if origin := p.Origin(); len(origin) > 0 {
		return origin[0]
	}

	return ""
}

// Pathway writes one line per step. start hints at the compound consumed
// by the first step and is ignored when that step does not consume it.
func Pathway(w io.Writer, p *pathway.Pathway, start string) error {
	t := newTable(w, "step", "reaction", "name", "rule", "input", "output", "reversed", "formula")
	input := mainInput(p, start)
	for i, e := range p.Elements() {
		r := e.Reaction()
		t.row(itoa(i+1), r.BiggID, r.Name, r.Rule, input, e.Output(), yesNo(e.IsReversed()), r.Formula())
		input = e.Output()
	}

	return t.close()
}

// PathwayInputs writes the molecules the pathway consumes besides its
// main chain, most needed first. start hints at the main-line input of
// the first step, as for Pathway. Common compounds are flagged.
func PathwayInputs(w io.Writer, p *pathway.Pathway, start string, commons map[string]struct{}) error {
	counts := make(map[string]int)
	main := mainInput(p, start)
	for _, e := range p.Elements() {
		for _, s := range e.Inputs() {
			if s.Metabolite != main {
				counts[s.Metabolite] += s.Count()
			}
		}
		main = e.Output()
	}

	t := newTable(w, "compound", "count", "common")
	for _, c := range sortedByCount(counts) {
		_, common := commons[c]
		t.row(c, itoa(counts[c]), yesNo(common))
	}

	return t.close()
}

// PathwayTriggers writes, for every step, the genes of its rule and the
// features that trigger it.
func PathwayTriggers(w io.Writer, p *pathway.Pathway, m *model.Model) error {
	byReaction := featuresByReaction(m)
	t := newTable(w, "reaction", "genes", "features")
	for _, e := range p.Elements() {
		r := e.Reaction()
		t.row(r.BiggID, strings.Join(r.Triggers(), " "), strings.Join(byReaction[r.ID], " "))
	}

	return t.close()
}

func featuresByReaction(m *model.Model) map[int][]string {
	out := make(map[int][]string)
	for _, fid := range m.Features() {
		for _, r := range m.ReactionsFor(fid) {
			out[r.ID] = append(out[r.ID], fid)
		}
	}

	return out
}

// Branches writes the side reactions that leave each intermediate of p.
func Branches(w io.Writer, p *pathway.Pathway, src pathway.SuccessorSource) error {
	branches := p.Branches(src)
	t := newTable(w, "compound", "reaction", "name", "formula")
	for _, c := range slices.Sorted(maps.Keys(branches)) {
		rs := slices.Clone(branches[c])
		slices.SortFunc(rs, core.CompareReactions)
		for _, r := range rs {
			t.row(c, r.BiggID, r.Name, r.Formula())
		}
	}

	return t.close()
}

// Distances writes a painting nearest first, ties by compound.
func Distances(w io.Writer, painting map[string]int) error {
	compounds := slices.Collect(maps.Keys(painting))
	slices.SortFunc(compounds, func(a, b string) int {
		if c := cmp.Compare(painting[a], painting[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	t := newTable(w, "compound", "distance")
	for _, c := range compounds {
		t.row(c, itoa(painting[c]))
	}

	return t.close()
}

// SuccessorStats writes every compound's successor count, largest first,
// flagging the commons.
func SuccessorStats(w io.Writer, m *model.Model) error {
	counts := m.SuccessorCounts()
	commons := m.Commons()
	t := newTable(w, "compound", "successors", "common")
	for _, c := range sortedByCount(counts) {
		_, common := commons[c]
		t.row(c, itoa(counts[c]), yesNo(common))
	}

	return t.close()
}

// Reactions writes one line per reaction in the order given.
func Reactions(w io.Writer, rs []*core.Reaction) error {
	t := newTable(w, "reaction", "name", "rule", "active", "formula")
	for _, r := range rs {
		t.row(r.BiggID, r.Name, r.Rule, r.Active().String(), r.Formula())
	}

	return t.close()
}

// Triggered writes the reactions triggered by each feature.
func Triggered(w io.Writer, m *model.Model, features []string) error {
	t := newTable(w, "feature", "reaction", "name", "formula")
	for _, fid := range features {
		for _, r := range m.ReactionsFor(fid) {
			t.row(fid, r.BiggID, r.Name, r.Formula())
		}
	}

	return t.close()
}

// Compounds writes every compound with its successor and producer counts
// and the location of its primary node, if drawn.
func Compounds(w io.Writer, m *model.Model) error {
	t := newTable(w, "compound", "successors", "producers", "nodes", "x", "y")
	for _, c := range m.Compounds() {
		x, y, nodes := "", "", 0
		if ns, err := m.Metabolites(c); err == nil {
			nodes = len(ns)
			if n, err := m.Primary(c); err == nil {
				x = formatCoord(n.Loc.X)
				y = formatCoord(n.Loc.Y)
			}
		}
		t.row(c, itoa(len(m.Successors(c))), itoa(len(m.Producers(c))), itoa(nodes), x, y)
	}

	return t.close()
}

// Connectivity writes the path map scores, highest first.
func Connectivity(w io.Writer, pm *pathmap.Map) error {
	t := newTable(w, "compound", "score")
	for _, s := range pm.Scores() {
		t.row(s.Compound, itoa(s.Count))
	}

	return t.close()
}

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// sortedByCount orders the keys of counts by count descending, then name.
func sortedByCount(counts map[string]int) []string {
	keys := slices.Collect(maps.Keys(counts))
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return keys
}
