// SPDX-License-Identifier: MIT

// Package core defines the leaf records of a metabolic network: reactions,
// their stoichiometry, the direction overlay applied by flow modifiers, and
// the display nodes of a metabolic map.
//
// What
//
//   - Stoich: one (metabolite, signed coefficient) entry. Negative = reactant,
//     positive = product.
//   - Reaction: identity (internal ID + BiGG ID), reversibility, gene rule,
//     triggering gene tokens, sorted stoichiometry and an Active direction.
//   - Direction: the ActiveDirections overlay (Both, Forward, Reverse, Neither).
//   - Node / Coordinate: metabolite and marker nodes drawn on a map.
//
// Traversal
//
//	Reaction.Outputs(input) answers "where can I go from input through this
//	reaction": a reactant input yields the product side when forward travel is
//	allowed; a product input yields the reactant side when the reaction is
//	reversible and reverse travel is allowed. Reaction.Inputs(output) is the
//	mirror used when walking producers backward. Both honour the Active
//	overlay, so a Neither reaction connects nothing and a Forward reaction is
//	never travelled backward even if it is chemically reversible.
//
// Determinism
//
//	Stoichiometry is kept sorted by (coefficient, metabolite) and reactions
//	order by internal ID, so every iteration over a reaction is reproducible.
//
// Errors:
//
//	ErrEmptyBiggID     - reaction constructed without a BiGG identifier.
//	ErrEmptyMetabolite - stoichiometry entry without a metabolite.
//	ErrZeroCoefficient - stoichiometry entry with coefficient 0.
//	ErrBadDirection    - unparsable direction name.
package core
