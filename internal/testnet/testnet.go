// SPDX-License-Identifier: MIT

// Package testnet provides a small citric-acid-cycle network shared by the
// package tests: fifteen reactions, six nodes and an alias table for every
// gene except the xylose isomerase gene s0001.
//
// Orphans: CITL (no rule) and XYISO (s0001 unknown).
package testnet

import (
	"bytes"
	_ "embed"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metapath/genome"
	"github.com/katalvlaran/metapath/model"
)

// MapJSON is the toy map document.
//
//go:embed toy_map.json
var MapJSON []byte

// AliasTable is the toy alias table in tab-separated form.
//
//go:embed toy_aliases.tsv
var AliasTable []byte

// ChainJSON is a two-reaction map: R1 a_c -> b_c and R2 b_c -> c_c.
const ChainJSON = `[
 {"map_name": "chain"},
 {"reactions": {
   "1": {"name": "a to b", "bigg_id": "R1", "reversibility": false,
         "gene_reaction_rule": "g1", "genes": [{"bigg_id": "g1", "name": "one"}],
         "metabolites": [{"bigg_id": "a_c", "coefficient": -1}, {"bigg_id": "b_c", "coefficient": 1}]},
   "2": {"name": "b to c", "bigg_id": "R2", "reversibility": false,
         "gene_reaction_rule": "g2",
         "metabolites": [{"bigg_id": "b_c", "coefficient": -1}, {"bigg_id": "c_c"}]}
  },
  "nodes": {}}
]`

// Aliases parses AliasTable.
func Aliases(tb testing.TB) *genome.AliasMap {
	tb.Helper()
	a, err := genome.ReadAliases(bytes.NewReader(AliasTable))
	require.NoError(tb, err)

	return a
}

// Model loads the toy map with the toy aliases.
func Model(tb testing.TB, opts ...model.Option) *model.Model {
	tb.Helper()
	m, err := model.Load(bytes.NewReader(MapJSON), Aliases(tb), opts...)
	require.NoError(tb, err)

	return m
}

// Chain loads ChainJSON with no aliases.
func Chain(tb testing.TB, opts ...model.Option) *model.Model {
	tb.Helper()
	m, err := model.Load(bytes.NewReader([]byte(ChainJSON)), nil, opts...)
	require.NoError(tb, err)

	return m
}
