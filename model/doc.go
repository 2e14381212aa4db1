// SPDX-License-Identifier: MIT

// Package model implements the metabolic network model: the aggregate root
// that owns every reaction and map node and maintains the indices the
// pathway search walks.
//
// What
//
//   - Reaction registry keyed by internal ID, with a BiGG ID index.
//   - Feature index: feature ID → reactions its gene aliases trigger.
//   - Orphans: reactions whose gene aliases resolve to no feature.
//   - Successors: compound → reactions that can consume it.
//   - Producers: compound → reactions that can yield it.
//   - Node registry keyed by node ID, metabolite nodes grouped by BiGG ID.
//   - Common compounds and distance paintings derived from the indices.
//
// Double registration
//
//	A reversible reaction is registered as a successor and as a producer of
//	every participant; an irreversible one is a successor of its reactants
//	and a producer of its products. Successors and Producers then filter by
//	each reaction's Active overlay, so flow modifiers take effect without
//	rebuilding any index.
//
// Storage
//
//	Indices hold reaction IDs only; every lookup resolves through the one
//	reaction table, so a reaction is never duplicated across indices.
//
// Lifecycle
//
//	Load (or New + AddReaction/AddNode) builds the model. After that the
//	only mutations are Import (additive) and the Active overlay set by flow
//	modifiers; both must complete before queries start. No locking is done.
//
// Errors:
//
//	ErrBadFormat          - malformed map document; no model is returned.
//	ErrDuplicateReaction  - AddReaction with a known ID or BiGG ID.
//	ErrNodeNotFound       - Node lookup of an unknown node ID.
//	ErrMetaboliteNotFound - Metabolites/Primary lookup of an undrawn compound.
//	ErrOptionViolation    - invalid tuning values.
package model
