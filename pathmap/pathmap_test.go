// SPDX-License-Identifier: MIT

package pathmap_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metapath/internal/testnet"
	"github.com/katalvlaran/metapath/pathmap"
	"github.com/katalvlaran/metapath/pathway"
)

func TestBuild_Chain(t *testing.T) {
	pm, err := pathmap.Build(testnet.Chain(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"a_c", "b_c"}, pm.Sources())
	assert.Equal(t, []string{"b_c", "c_c"}, pm.Targets("a_c"))

	p, ok := pm.Get("a_c", "c_c")
	require.True(t, ok)
	assert.Equal(t, "R1-->b_c R2-->c_c", p.String())

	_, ok = pm.Get("c_c", "a_c")
	assert.False(t, ok)

	assert.Equal(t, 1, pm.Score("b_c"))
	assert.Equal(t, []pathmap.Score{{Compound: "b_c", Count: 1}}, pm.Scores())
}

func TestBuild_Toy(t *testing.T) {
	m := testnet.Model(t)
	pm, err := pathmap.Build(m)
	require.NoError(t, err)

	commons := m.Commons()
	for _, src := range pm.Sources() {
		_, common := commons[src]
		assert.False(t, common, src)
		for _, dst := range pm.Targets(src) {
			p, ok := pm.Get(src, dst)
			require.True(t, ok)
			assert.Equal(t, dst, p.Terminus())
			assert.True(t, p.First().Consumes(src), "%s→%s", src, dst)
			for i := 1; i < p.Len(); i++ {
				assert.True(t, p.Element(i).Consumes(p.Element(i-1).Output()))
			}
		}
	}

	p, ok := pm.Get("succ_c", "icit_c")
	require.True(t, ok)
	assert.Equal(t, 6, p.Len())

	assert.Zero(t, pm.Score("h2o_c"), "commons are never extended")
	assert.Positive(t, pm.Score("cit_c"))
	scores := pm.Scores()
	require.NotEmpty(t, scores)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Count, scores[i].Count)
	}
}

func TestBuild_LengthLimit(t *testing.T) {
	pm, err := pathmap.Build(testnet.Model(t), pathmap.WithMaxPathLen(1))
	require.NoError(t, err)
	for _, src := range pm.Sources() {
		for _, dst := range pm.Targets(src) {
			p, _ := pm.Get(src, dst)
			assert.Equal(t, 1, p.Len())
		}
	}
	assert.Empty(t, pm.Scores())
}

func TestBuild_Errors(t *testing.T) {
	_, err := pathmap.Build(nil)
	require.ErrorIs(t, err, pathmap.ErrNilModel)

	_, err = pathmap.Build(testnet.Chain(t), pathmap.WithMaxPathLen(-2))
	require.ErrorIs(t, err, pathmap.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = pathmap.Build(testnet.Chain(t), pathmap.WithOnRecord(func(string, *pathway.Pathway) error {
		return stop
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pathmap.Build(testnet.Chain(t), pathmap.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
