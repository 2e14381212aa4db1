// SPDX-License-Identifier: MIT

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metapath/core"
)

func TestCompareCoordinates_Order(t *testing.T) {
	xy1 := core.Coordinate{X: 1, Y: 2}
	xy2 := core.Coordinate{X: 2, Y: 1}
	xy3 := core.Coordinate{X: -1, Y: 2}
	xy4 := core.Coordinate{X: 2, Y: -1}
	xy5 := core.Coordinate{X: -1, Y: -2}
	xy6 := core.Coordinate{X: -2, Y: -1}
	xy7 := core.Coordinate{X: 1, Y: -2}
	xy8 := core.Coordinate{X: -2, Y: 1}

	got := []core.Coordinate{xy1, xy2, xy3, xy4, xy5, xy6, xy7, xy8}
	slices.SortFunc(got, core.CompareCoordinates)
	require.Equal(t, []core.Coordinate{xy5, xy7, xy6, xy4, xy8, xy2, xy3, xy1}, got)
	require.InDelta(t, 5.0, core.Coordinate{}.Distance(core.Coordinate{X: 3, Y: 4}), 1e-9)
}

func TestNode_Kind(t *testing.T) {
	n := &core.Node{ID: 1, Kind: core.Metabolite, BiggID: "cit_c"}
	require.True(t, n.IsMetabolite())
	require.Equal(t, "metabolite", n.Kind.String())
	require.Equal(t, "marker", core.Marker.String())
}
