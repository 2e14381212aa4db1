// SPDX-License-Identifier: MIT

// Package sbml reads SBML level 3 documents that use the flux balance
// constraints (fbc) package and turns their reactions into specs a
// model can import.
//
// Only the parts a pathway search needs are read: reaction identity,
// reversibility, reactant and product stoichiometry, gene product
// associations and the gene product table. BiGG prefixes (R_, M_, G_)
// are stripped from identifiers so imported reactions line up with map
// reactions.
package sbml
