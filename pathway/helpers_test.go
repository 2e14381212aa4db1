// SPDX-License-Identifier: MIT

package pathway_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metapath/core"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/pathway"
)

// stoich returns the entry of output in reaction bigg.
func stoich(t *testing.T, m *model.Model, bigg, output string) (*core.Reaction, core.Stoich) {
	t.Helper()
	r := m.Reaction(bigg)
	require.NotNil(t, r, bigg)
	for _, s := range r.Stoichiometry() {
		if s.Metabolite == output {
			return r, s
		}
	}
	t.Fatalf("%s has no %s", bigg, output)

	return nil, core.Stoich{}
}

// build assembles a pathway from (reaction, output) pairs.
func build(t *testing.T, m *model.Model, goal string, steps ...[2]string) *pathway.Pathway {
	t.Helper()
	r, s := stoich(t, m, steps[0][0], steps[0][1])
	p := pathway.NewWithGoal(r, s, goal)
	for _, st := range steps[1:] {
		r, s = stoich(t, m, st[0], st[1])
		p.Add(r, s)
	}

	return p
}
