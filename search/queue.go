// SPDX-License-Identifier: MIT

package search

import (
	"cmp"

	"github.com/katalvlaran/metapath/paint"
	"github.com/katalvlaran/metapath/pathway"
)

// candidate is a queued partial pathway with its estimate fixed at push time.
type candidate struct {
	path *pathway.Pathway
	est  int // painted distance of the terminus + length
	seq  int // insertion order, last tiebreak
}

// less is the search order: estimate, length, reaction IDs, outputs,
// directions, then insertion order. It depends only on a and b.
func less(a, b *candidate) bool {
	if c := cmp.Compare(a.est, b.est); c != 0 {
		return c < 0
	}
	pa, pb := a.path, b.path
	if c := cmp.Compare(pa.Len(), pb.Len()); c != 0 {
		return c < 0
	}
	for i := 0; i < pa.Len(); i++ {
		ea, eb := pa.Element(i), pb.Element(i)
		if c := cmp.Compare(ea.Reaction().ID, eb.Reaction().ID); c != 0 {
			return c < 0
		}
		if c := cmp.Compare(ea.Output(), eb.Output()); c != 0 {
			return c < 0
		}
		if ea.IsReversed() != eb.IsReversed() {
			return !ea.IsReversed()
		}
	}

	return a.seq < b.seq
}

// candidatePQ is a min-heap of *candidate ordered by less.
type candidatePQ []*candidate

// Len returns the number of queued candidates.
func (pq candidatePQ) Len() int { return len(pq) }

// Less delegates to less.
func (pq candidatePQ) Less(i, j int) bool { return less(pq[i], pq[j]) }

// Swap swaps two elements in the heap.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *candidate.
func (pq *candidatePQ) Push(x any) { *pq = append(*pq, x.(*candidate)) }

// Pop removes and returns the last element.
func (pq *candidatePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// paintLimit keeps goal paintings within the engine's length limit.
func paintLimit(n int) paint.Option { return paint.WithMaxPathLen(n) }
