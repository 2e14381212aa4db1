// SPDX-License-Identifier: MIT

// Package pathway models routes through a metabolic network.
//
// A Pathway is an ordered list of Elements; each Element binds a reaction,
// the direction it is travelled in and the output compound that step
// reaches. A Pathway also carries a goal compound used by the search: it
// is complete when its last output equals the goal.
//
// Invariants (maintained by the search engine, not checked by Add):
//
//   - No reaction appears twice in one pathway.
//   - Element i's output is among the inputs of element i+1.
//   - An element is reversed only if its reaction is reversible.
//
// Extension
//
//	Add appends in place; Extend returns a clone with one more step. The
//	search only uses Extend, so frontier entries never share tails. Elements
//	are immutable values and are shared freely between clones.
//
// Ordering
//
//	Compare puts shorter pathways first and breaks ties element by element
//	on (reaction BiGG ID, output, reversed).
//
// Persistence
//
//	Save writes a JSON Document (goal plus reaction/output/reversed triples);
//	Load rebuilds the Pathway against a model and validates every step.
package pathway
