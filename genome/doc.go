// SPDX-License-Identifier: MIT

// Package genome supplies the gene-alias table a metabolic model uses to
// link reactions to the features (protein-encoding genes) of one genome.
//
// An alias is any token a map's gene rules may use for a gene: a locus tag
// such as "b0118", a gene name such as "acnB", and so on. Each alias maps to
// one or more feature IDs. The table is read from a tab-separated file:
//
//	feature_id	aliases
//	fig|511145.183.peg.118	b0118,acnB
//	fig|511145.183.peg.1276	b1276 acnA
package genome
