// SPDX-License-Identifier: MIT

package paint

import (
	"cmp"
	"container/heap"
)

// Paint returns the hop distance from every reachable compound to target.
// Compounds absent from the result are unreachable within the limit (or
// common).
//
// Validation order:
//  1. target must be non-empty (ErrEmptyTarget).
//  2. net must be non-nil (ErrNilNetwork).
//  3. options must be valid (ErrOptionViolation).
func Paint(net Network, target string, opts ...Option) (map[string]int, error) {
	// 1) Validate inputs.
	if target == "" {
		return nil, ErrEmptyTarget
	}
	if net == nil {
		return nil, ErrNilNetwork
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Run the expansion.
	r := &runner{
		net:     net,
		options: cfg,
		dist:    make(map[string]int),
		pq:      make(distPQ, 0, 16),
	}
	r.init(target)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state of one painting.
type runner struct {
	net     Network
	options Options
	dist    map[string]int // compound → hops to target
	pq      distPQ         // frontier ordered by (dist, id)
}

// init paints the target and seeds the frontier with it.
func (r *runner) init(target string) {
	r.dist[target] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &distItem{id: target, dist: 0})
}

// process pops compounds in (distance, id) order and paints their
// unpainted, non-common neighbours at distance+1.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*distItem)

		// A compound at the limit is painted but not expanded.
		next := item.dist + 1
		if next >= r.options.MaxPathLen {
			continue
		}
		r.relax(item.id, next)
	}
}

// relax paints every fresh neighbour of u with distance d.
func (r *runner) relax(u string, d int) {
	for _, v := range r.net.Neighbors(u) {
		if _, common := r.options.Commons[v]; common {
			continue
		}
		if _, seen := r.dist[v]; seen {
			continue
		}
		r.dist[v] = d
		heap.Push(&r.pq, &distItem{id: v, dist: d})
	}
}

// distItem is a frontier entry.
type distItem struct {
	id   string
	dist int
}

// distPQ is a min-heap of *distItem ordered by dist, then id.
type distPQ []*distItem

// Len returns the number of items in the heap.
func (pq distPQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by compound ID.
func (pq distPQ) Less(i, j int) bool {
	if c := cmp.Compare(pq[i].dist, pq[j].dist); c != 0 {
		return c < 0
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *distItem.
func (pq *distPQ) Push(x any) { *pq = append(*pq, x.(*distItem)) }

// Pop removes and returns the last element.
func (pq *distPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
