// SPDX-License-Identifier: MIT

package pathmap

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/pathway"
)

// Map holds the shortest forward pathway from every source to every
// compound it reaches.
type Map struct {
	paths  map[string]map[string]*pathway.Pathway // source → target → pathway
	scores map[string]int
}

// walker holds the state of one source walk.
type walker struct {
	m       *model.Model
	opts    Options
	maxLen  int
	commons map[string]struct{}
	source  string
	found   map[string]*pathway.Pathway
}

// Build walks every non-common input compound of m.
func Build(m *model.Model, opts ...Option) (*Map, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	maxLen := o.MaxPathLen
	if maxLen == 0 {
		maxLen = m.Limits().MaxPathLen
	}

	commons := m.Commons()
	out := &Map{
		paths:  make(map[string]map[string]*pathway.Pathway),
		scores: make(map[string]int),
	}
	for _, source := range m.InputCompounds() {
		if _, common := commons[source]; common {
			continue
		}
		w := &walker{
			m:       m,
			opts:    o,
			maxLen:  maxLen,
			commons: commons,
			source:  source,
			found:   make(map[string]*pathway.Pathway),
		}
		if err := w.walk(); err != nil {
			return nil, err
		}
		out.paths[source] = w.found
		for _, p := range w.found {
			for i := 0; i < p.Len()-1; i++ {
				out.scores[p.Element(i).Output()]++
			}
		}
		o.Logger.Debug().Str("source", source).Int("targets", len(w.found)).Msg("source mapped")
	}
	o.Logger.Info().Int("sources", len(out.paths)).Msg("path map built")

	return out, nil
}

// walk runs the level-by-level expansion from w.source.
func (w *walker) walk() error {
	var level []*pathway.Pathway
	for _, r := range w.m.Successors(w.source) {
		for _, s := range r.Outputs(w.source) {
			level = append(level, pathway.New(r, s))
		}
	}

	for depth := 1; len(level) > 0; depth++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		slices.SortFunc(level, pathway.Compare)

		var next []*pathway.Pathway
		for _, p := range level {
			// 1) First arrival wins.
			terminus := p.Terminus()
			if terminus == w.source {
				continue
			}
			if _, seen := w.found[terminus]; seen {
				continue
			}
			w.found[terminus] = p
			if err := w.opts.OnRecord(w.source, p); err != nil {
				return fmt.Errorf("pathmap: OnRecord error at %s→%s: %w", w.source, terminus, err)
			}

			// 2) Commons and the length limit end the branch.
			if _, common := w.commons[terminus]; common || depth >= w.maxLen {
				continue
			}

			// 3) Extend toward unrecorded compounds.
			for _, r := range w.m.Successors(terminus) {
				if p.Contains(r) {
					continue
				}
				for _, s := range r.Outputs(terminus) {
					if _, seen := w.found[s.Metabolite]; seen || s.Metabolite == w.source {
						continue
					}
					next = append(next, p.Extend(r, s))
				}
			}
		}
		level = next
	}

	return nil
}

// Get returns the recorded pathway from source to target.
func (m *Map) Get(source, target string) (*pathway.Pathway, bool) {
	p, ok := m.paths[source][target]

	return p, ok
}

// Sources returns the walked compounds, sorted.
func (m *Map) Sources() []string {
	return slices.Sorted(maps.Keys(m.paths))
}

// Targets returns the compounds reached from source, sorted.
func (m *Map) Targets(source string) []string {
	return slices.Sorted(maps.Keys(m.paths[source]))
}

// Score returns how many recorded pathways pass through compound as an
// intermediate.
func (m *Map) Score(compound string) int { return m.scores[compound] }

// Scores returns every non-zero score, highest first, ties by compound.
func (m *Map) Scores() []Score {
	out := make([]Score, 0, len(m.scores))
	for c, n := range m.scores {
		out = append(out, Score{Compound: c, Count: n})
	}
	slices.SortFunc(out, func(a, b Score) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Compound, b.Compound)
	})

	return out
}
