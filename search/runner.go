// SPDX-License-Identifier: MIT

package search

import (
	"container/heap"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/filter"
	"github.com/katalvlaran/metapath/internal/observability"
	"github.com/katalvlaran/metapath/pathway"
)

// unreachable is the estimate of a candidate whose terminus is unpainted.
const unreachable = math.MaxInt32

// Outcome labels recorded by the runner.
const (
	outcomeFound      = observability.OutcomeFound
	outcomeNotFound   = observability.OutcomeNotFound
	outcomeInfeasible = observability.OutcomeInfeasible
	outcomeCancelled  = observability.OutcomeCancelled
)

// runner holds the mutable state of one FindPathway call.
type runner struct {
	e         *Engine
	filters   []filter.Filter
	commons   map[string]struct{}
	paintings map[string]map[string]int // goal → painting; nil = goal infeasible
	pq        candidatePQ
	seq       int
	processed int
	queued    int
	cancelled bool
	start     time.Time
	log       zerolog.Logger
}

func newRunner(e *Engine, filters []filter.Filter) *runner {
	return &runner{
		e:         e,
		filters:   filters,
		commons:   e.model.Commons(),
		paintings: make(map[string]map[string]int),
		pq:        make(candidatePQ, 0, 64),
		start:     time.Now(),
		log:       e.log,
	}
}

// painting returns the painting of goal, computing it on first use.
// It returns nil when goal has no producer.
func (r *runner) painting(goal string) map[string]int {
	if dist, seen := r.paintings[goal]; seen {
		return dist
	}
	if len(r.e.model.Producers(goal)) == 0 {
		r.log.Warn().Str("goal", goal).Msg("no reactions produce the goal compound")
		r.paintings[goal] = nil
		return nil
	}
	dist, err := r.e.model.PaintProducers(goal, r.commons, paintLimit(r.e.maxLen))
	if err != nil {
		r.log.Warn().Err(err).Str("goal", goal).Msg("goal painting failed")
		r.paintings[goal] = nil
		return nil
	}
	if m := r.e.options.Metrics; m != nil {
		m.Paintings.Inc()
	}
	r.paintings[goal] = dist

	return dist
}

// init paints every goal and seeds the queue. Seeds are vetted at every
// step since they may come from outside the search.
func (r *runner) init(initial []*pathway.Pathway) {
	heap.Init(&r.pq)
	for _, p := range initial {
		if p.Len() == 0 {
			continue
		}
		dist := r.painting(p.Goal())
		if dist == nil {
			continue
		}
		if filter.AllPossibleAlong(r.filters, p) {
			r.push(p, dist)
		}
	}
}

// push queues p with its estimate under dist.
func (r *runner) push(p *pathway.Pathway, dist map[string]int) {
	est := unreachable
	if d, ok := dist[p.Terminus()]; ok {
		est = d + p.Len()
	}
	r.seq++
	r.queued++
	heap.Push(&r.pq, &candidate{path: p, est: est, seq: r.seq})
}

// process pops candidates until a good complete pathway appears or the
// queue is empty.
func (r *runner) process() *pathway.Pathway {
	ctx := r.e.options.Context
	interval := r.e.options.ProgressInterval
	for r.pq.Len() > 0 {
		// 1) Honour cancellation.
		if ctx.Err() != nil {
			r.cancelled = true
			r.log.Warn().Err(ctx.Err()).Int("processed", r.processed).Msg("pathway search cancelled")
			return nil
		}

		// 2) Pop the best candidate.
		c := heap.Pop(&r.pq).(*candidate)
		r.processed++
		if r.processed%interval == 0 {
			r.log.Debug().
				Int("processed", r.processed).
				Int("queued", r.queued).
				Int("pending", r.pq.Len()).
				Int("length", c.path.Len()).
				Msg("pathway search progress")
		}

		// 3) Complete: accept or discard.
		if c.path.IsComplete() {
			if filter.AllGood(r.filters, c.path) {
				return c.path
			}
			continue
		}

		// 4) Extend.
		r.expand(c.path)
	}

	return nil
}

// expand queues every admissible one-step extension of p.
func (r *runner) expand(p *pathway.Pathway) {
	dist := r.paintings[p.Goal()]
	terminus := p.Terminus()
	for _, rxn := range r.e.model.Successors(terminus) {
		if p.Contains(rxn) {
			continue
		}
		for _, s := range rxn.Outputs(terminus) {
			d, ok := dist[s.Metabolite]
			if !ok {
				d = r.e.maxLen
			}
			if d+p.Len() >= r.e.maxLen {
				continue
			}
			next := p.Extend(rxn, s)
			if filter.AllPossible(r.filters, next) {
				r.push(next, dist)
			}
		}
	}
}

// finish logs and records the outcome.
func (r *runner) finish(found *pathway.Pathway) {
	outcome := outcomeFound
	switch {
	case r.cancelled:
		outcome = outcomeCancelled
	case found == nil && r.queued == 0:
		outcome = outcomeInfeasible
	case found == nil:
		outcome = outcomeNotFound
		r.log.Warn().Int("processed", r.processed).Msg("no pathway found")
	}
	if m := r.e.options.Metrics; m != nil {
		m.PathsProcessed.Add(float64(r.processed))
		m.PathsQueued.Add(float64(r.queued))
	}
	r.e.record(outcome, time.Since(r.start).Seconds(), found)
}

// record reports one finished search to the metrics, if any.
func (e *Engine) record(outcome string, seconds float64, found *pathway.Pathway) {
	length := 0
	if found != nil {
		length = found.Len()
	}
	e.options.Metrics.RecordSearch(outcome, seconds, length)
}
