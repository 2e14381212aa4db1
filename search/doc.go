// SPDX-License-Identifier: MIT

// Package search finds shortest pathways through a metabolic model.
//
// The engine runs a best-first search over partial pathways. Each goal
// compound is painted once (producer painting, common compounds skipped) and
// the painting estimates the remaining distance from a pathway's terminus.
//
// Algorithm (FindPathway):
//
//  1. Drop initial pathways whose goal has no producer (warning). Paint each
//     distinct remaining goal.
//  2. Seed a priority queue with the initial pathways that pass every
//     filter's IsPossible.
//  3. Pop the best candidate. A complete pathway passing every filter's
//     IsGood is the answer; a complete pathway failing one is discarded.
//  4. Otherwise extend it with every successor reaction of the terminus not
//     already on the pathway, once per output that reaction yields. An
//     extension is kept when painted distance + current length stays below
//     MaxPathLen and every filter's IsPossible passes.
//  5. An empty queue means no pathway.
//
// Ordering
//
//	Candidates order by (estimate, length, reaction IDs step by step, outputs
//	step by step, insertion order). The estimate is painted distance of the
//	terminus plus length, fixed when the candidate is pushed; an unpainted
//	terminus sorts last. The comparator reads only the two candidates.
//
// Absence
//
//	"No pathway" is a normal outcome: every entry point returns (nil, false)
//	and logs a warning. Errors are reserved for engine construction.
//
// Loops
//
//	LoopPathway extends a pathway back to its origin. When every step of the
//	pathway can be travelled backward, the mirrored pathway is seeded into
//	the same queue, so walking the known route back competes with finding a
//	fresh forward route. Each seed is ordered by its own goal's painting; the
//	result is the first good complete pathway under that shared ordering.
package search
