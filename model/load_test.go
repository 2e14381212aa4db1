// SPDX-License-Identifier: MIT

package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metapath/internal/testnet"
	"github.com/katalvlaran/metapath/model"
)

func TestLoad_BadFormat(t *testing.T) {
	cases := map[string]string{
		"not json":      `{{{`,
		"one element":   `[{}]`,
		"bad body":      `[{}, {"reactions": []}]`,
		"non-int key":   `[{}, {"reactions": {"x": {"bigg_id": "R"}}, "nodes": {}}]`,
		"empty bigg id": `[{}, {"reactions": {"1": {"name": "r"}}, "nodes": {}}]`,
		"zero coefficient": `[{}, {"reactions": {"1": {"bigg_id": "R",
			"metabolites": [{"bigg_id": "a", "coefficient": 0}]}}, "nodes": {}}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := model.Load(strings.NewReader(doc), nil)
			require.ErrorIs(t, err, model.ErrBadFormat)
			require.Nil(t, m)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	m := testnet.Chain(t)
	require.Equal(t, "chain", m.MapName())

	r2 := m.Reaction("R2")
	require.NotNil(t, r2)
	require.Equal(t, 1, r2.Stoichiometry()[1].Coefficient, "missing coefficient defaults to 1")
	require.False(t, r2.Reversible)
	require.Len(t, m.Orphans(), 2)

	m, err := model.Load(strings.NewReader(`[{}, {"reactions": {}, "nodes": {}}]`), nil)
	require.NoError(t, err)
	require.Equal(t, model.DefaultMapName, m.MapName())
}

func TestLoad_FractionalCoefficients(t *testing.T) {
	doc := `[{}, {"reactions": {"1": {"bigg_id": "BIO", "metabolites": [
		{"bigg_id": "a", "coefficient": -0.25},
		{"bigg_id": "b", "coefficient": 2.6}]}}, "nodes": {}}]`
	m, err := model.Load(strings.NewReader(doc), nil)
	require.NoError(t, err)

	st := m.Reaction("BIO").Stoichiometry()
	require.Equal(t, -1, st[0].Coefficient)
	require.Equal(t, 3, st[1].Coefficient)
}

func TestLoad_DuplicateBiggIDKeptOnce(t *testing.T) {
	doc := `[{}, {"reactions": {
		"7": {"bigg_id": "R", "name": "second", "metabolites": [{"bigg_id": "a", "coefficient": -1}]},
		"3": {"bigg_id": "R", "name": "first", "metabolites": [{"bigg_id": "a", "coefficient": -1}]}
	}, "nodes": {}}]`
	m, err := model.Load(strings.NewReader(doc), nil)
	require.NoError(t, err)
	require.Equal(t, 1, m.ReactionCount())
	require.Equal(t, "first", m.Reaction("R").Name)
}

func TestLoad_OptionOverrides(t *testing.T) {
	m := testnet.Model(t, model.WithMapName("renamed"), model.WithMaxPathLen(7), model.WithCommons("accoa_c"))
	require.Equal(t, "renamed", m.MapName())
	require.Equal(t, 7, m.Limits().MaxPathLen)
	require.Equal(t, model.DefaultMaxSuccessors, m.Limits().MaxSuccessors)
	require.Contains(t, m.Commons(), "accoa_c")

	_, err := model.New(nil, model.WithMaxSuccessors(0))
	require.ErrorIs(t, err, model.ErrOptionViolation)
	_, err = model.Load(strings.NewReader(testnet.ChainJSON), nil, model.WithMaxPathLen(-1))
	require.ErrorIs(t, err, model.ErrOptionViolation)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := model.LoadFile(t.TempDir()+"/absent.json", nil)
	require.ErrorIs(t, err, model.ErrBadFormat)
}
