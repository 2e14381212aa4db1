// SPDX-License-Identifier: MIT

package genome_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metapath/genome"
)

func TestReadAliases(t *testing.T) {
	src := "feature_id\taliases\n" +
		"peg.118\tb0118,acnB\n" +
		"\n" +
		"peg.1276\tb1276 acnA\n" +
		"peg.9\tacnA\n"
	m, err := genome.ReadAliases(strings.NewReader(src))
	require.NoError(t, err)

	require.Equal(t, []string{"peg.118"}, m.Features("b0118"))
	require.Equal(t, []string{"peg.1276", "peg.9"}, m.Features("acnA"))
	require.Nil(t, m.Features("nope"))
	require.Equal(t, []string{"acnB", "b0118"}, m.Aliases("peg.118"))
	require.Equal(t, 4, m.Len())
}

func TestReadAliases_BadRow(t *testing.T) {
	_, err := genome.ReadAliases(strings.NewReader("feature_id\taliases\nno-tab-here\n"))
	require.ErrorIs(t, err, genome.ErrBadFormat)
}
