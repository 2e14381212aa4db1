// SPDX-License-Identifier: MIT

// Package filter provides the pathway filters applied during a search.
//
// A Filter answers two questions about a pathway:
//
//   - IsPossible: can this partial pathway still lead to an acceptable
//     answer? Checked on every extension; false prunes the branch.
//   - IsGood: is this complete pathway acceptable? Checked when a pathway
//     reaching its goal is popped; false discards it and the search goes on.
//
// Kinds:
//
//   - None:    both checks always pass.
//   - Avoid:   IsPossible fails as soon as the terminus is a forbidden
//     compound; IsGood always passes.
//   - Include: IsPossible always passes; IsGood requires every named
//     reaction to be on the pathway.
//
// Filters are built once per query from Params, which names the reactions
// and compounds and the model they must exist in. Unknown names fail with
// ErrParseFailure. Several filters are conjoined by AllPossible and AllGood.
package filter
