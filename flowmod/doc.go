// SPDX-License-Identifier: MIT

// Package flowmod forces reaction directions before a pathway search.
//
// A Modifier names a reaction by the set of gene tokens in its trigger
// rule and pins its direction overlay:
//
//	Suppress     the reaction cannot run at all (core.Neither)
//	ForwardOnly  the reaction only runs forward (core.Forward)
//
// A List holds modifiers keyed by gene set, round-trips through a
// tab-separated table, JSON and YAML, and is applied to a model with
// Apply. Gene token order and modifier order never affect equality.
//
// Apply and Reset mutate the reactions of the model; call them before
// issuing queries, never concurrently with a search.
package flowmod
