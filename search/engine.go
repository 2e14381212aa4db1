// SPDX-License-Identifier: MIT

package search

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/filter"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/pathway"
)

// Engine answers pathway queries against one model. It holds no per-query
// state, so one Engine may serve any number of sequential queries.
type Engine struct {
	model   *model.Model
	options Options
	maxLen  int
	log     zerolog.Logger
}

// New builds an engine over m.
func New(m *model.Model, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	maxLen := cfg.MaxPathLen
	if maxLen == 0 {
		maxLen = m.Limits().MaxPathLen
	}

	return &Engine{model: m, options: cfg, maxLen: maxLen, log: cfg.Logger}, nil
}

// MaxPathLen returns the effective pathway length limit.
func (e *Engine) MaxPathLen() int { return e.maxLen }

// GetPathway finds the shortest pathway from compound from to compound to.
// It returns false when from has no successor or no pathway exists.
func (e *Engine) GetPathway(from, to string, filters ...filter.Filter) (*pathway.Pathway, bool) {
	starters := e.model.Successors(from)
	if len(starters) == 0 {
		e.log.Warn().Str("from", from).Str("to", to).Msg("no reactions consume the start compound")
		e.record(outcomeInfeasible, 0, nil)
		return nil, false
	}

	var initial []*pathway.Pathway
	for _, r := range starters {
		for _, s := range r.Outputs(from) {
			initial = append(initial, pathway.NewWithGoal(r, s, to))
		}
	}

	return e.FindPathway(initial, filters...)
}

// ExtendPathway continues p to goal. p is not modified; the result starts
// with p's steps.
func (e *Engine) ExtendPathway(p *pathway.Pathway, goal string, filters ...filter.Filter) (*pathway.Pathway, bool) {
	q := p.Clone()
	q.SetGoal(goal)

	return e.FindPathway([]*pathway.Pathway{q}, filters...)
}

// LoopPathway brings p back to origin, the compound it started from.
// When p can be travelled backward and origin is an input of its first
// step, the mirrored pathway competes with the forward extension.
func (e *Engine) LoopPathway(p *pathway.Pathway, origin string, filters ...filter.Filter) (*pathway.Pathway, bool) {
	fwd := p.Clone()
	fwd.SetGoal(origin)
	initial := []*pathway.Pathway{fwd}

	if p.Len() > 0 && p.IsReversible() && p.First().Consumes(origin) {
		rev, err := p.Reverse(origin)
		if err == nil {
			rev.SetGoal(origin)
			initial = append(initial, rev)
		}
	}

	return e.FindPathway(initial, filters...)
}

// Paint returns the producer painting of target with the current commons.
func (e *Engine) Paint(target string) (map[string]int, error) {
	return e.model.PaintProducers(target, e.model.Commons())
}

// FindPathway runs the best-first search from the initial pathways, each
// carrying its own goal, and returns the first complete pathway accepted
// by every filter.
func (e *Engine) FindPathway(initial []*pathway.Pathway, filters ...filter.Filter) (*pathway.Pathway, bool) {
	r := newRunner(e, filters)
	r.init(initial)
	found := r.process()
	r.finish(found)
	if found == nil {
		return nil, false
	}

	return found, true
}
