// SPDX-License-Identifier: MIT

// Package metapath finds biologically meaningful pathways through a
// genome-scale metabolic network.
//
// A network is loaded from an Escher-style map document and its gene
// rules are resolved against a genome's alias table. Queries then ask for
// the shortest chain of reactions that turns one compound into another,
// optionally through further targets, back to the origin, around
// forbidden compounds or through required reactions.
//
// The work is split into small packages:
//
//	core/      reactions, stoichiometry, direction overlay, display nodes
//	genome/    gene alias → feature table
//	model/     the network: registries, successor/producer indices, commons
//	paint/     uniform-cost distance painting used as the search heuristic
//	pathway/   pathway elements, pathways, save/load documents
//	filter/    pathway predicates (avoid compounds, include reactions)
//	search/    best-first pathway search (get, extend, loop)
//	flowmod/   flow modifiers that suppress or pin reaction directions
//	sbml/      SBML level 3 fbc import
//	pathmap/   all-sources shortest pathway map and connectivity scores
//	report/    tab-separated report writers
//
// The metapath command in cmd/metapath wires everything together.
//
// Quick example:
//
//	aliases, _ := genome.ReadAliases(aliasFile)
//	m, _ := model.LoadFile("ecoli.json", aliases)
//	e, _ := search.New(m)
//	if p, ok := e.GetPathway("succ_c", "icit_c"); ok {
//		fmt.Println(p)
//	}
package metapath
