// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/metapath/core"
)

// Import adds the reactions of specs whose BiGG ID is not yet known and
// returns how many were added. New reactions get IDs above LastID, so
// they never collide with a reaction or node of the map.
// Existing reactions are never replaced.
func (m *Model) Import(specs []ReactionSpec) int {
	added := 0
	for _, spec := range specs {
		if spec.BiggID == "" {
			m.log.Warn().Str("name", spec.Name).Msg("imported reaction has no BiGG ID, skipped")
			continue
		}
		if _, known := m.byBigg[spec.BiggID]; known {
			continue
		}
		opts := []core.ReactionOption{
			core.WithReversible(spec.Reversible),
			core.WithRule(spec.Rule),
			core.WithAliases(spec.Aliases...),
		}
		r, err := core.NewReaction(m.lastID+1, spec.BiggID, spec.Name, opts...)
		if err != nil {
			m.log.Warn().Err(err).Str("reaction", spec.BiggID).Msg("imported reaction rejected")
			continue
		}
		for _, s := range spec.Stoich {
			if err = r.AddStoich(s.Metabolite, s.Coefficient); err != nil {
				m.log.Warn().Err(err).Str("reaction", spec.BiggID).Msg("bad imported stoichiometry entry")
			}
		}
		if err = m.AddReaction(r); err != nil {
			m.log.Warn().Err(err).Str("reaction", spec.BiggID).Msg("imported reaction rejected")
			continue
		}
		added++
	}
	m.log.Info().Int("added", added).Int("offered", len(specs)).Msg("reactions imported")

	return added
}
