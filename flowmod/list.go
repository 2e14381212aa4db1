// SPDX-License-Identifier: MIT

package flowmod

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/core"
)

// List is a set of modifiers, at most one per gene set.
type List struct {
	mods  []Modifier
	byKey map[string]int // gene key → index in mods
	log   zerolog.Logger
}

// NewList returns an empty list.
func NewList(opts ...Option) *List {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &List{byKey: make(map[string]int), log: cfg.Logger}
}

// Add stores mod. A modifier already present for the same gene set is
// replaced.
func (l *List) Add(mod Modifier) {
	key := geneKey(mod.Genes)
	if i, ok := l.byKey[key]; ok {
		l.mods[i] = mod
		return
	}
	l.byKey[key] = len(l.mods)
	l.mods = append(l.mods, mod)
}

// Len returns the number of modifiers.
func (l *List) Len() int { return len(l.mods) }

// Modifiers returns the modifiers in insertion order.
func (l *List) Modifiers() []Modifier { return slices.Clone(l.mods) }

// Lookup returns the modifier for reactions triggered by exactly genes.
func (l *List) Lookup(genes []string) (Modifier, bool) {
	i, ok := l.byKey[geneKey(genes)]
	if !ok {
		return Modifier{}, false
	}

	return l.mods[i], true
}

// Equal reports whether l and o hold the same modifiers in any order.
func (l *List) Equal(o *List) bool {
	if l.Len() != o.Len() {
		return false
	}
	for _, m := range l.mods {
		other, ok := o.Lookup(m.Genes)
		if !ok || !other.Equal(m) {
			return false
		}
	}

	return true
}

// Apply sets the direction overlay of every reaction matched by a
// modifier and returns the number of reactions whose overlay changed.
func (l *List) Apply(m ReactionSource) int {
	changed, matched := 0, 0
	for _, r := range m.Reactions() {
		mod, ok := l.Lookup(r.Triggers())
		if !ok {
			continue
		}
		matched++
		if d := mod.Kind.Direction(); r.Active() != d {
			r.SetActive(d)
			changed++
		}
	}
	l.log.Info().
		Int("modifiers", l.Len()).
		Int("matched", matched).
		Int("changed", changed).
		Msg("flow modifiers applied")

	return changed
}

// Reset restores core.Both on every reaction a modifier matches and
// returns the number of reactions changed.
func (l *List) Reset(m ReactionSource) int {
	changed := 0
	for _, r := range m.Reactions() {
		if _, ok := l.Lookup(r.Triggers()); ok && r.Active() != core.Both {
			r.SetActive(core.Both)
			changed++
		}
	}
	l.log.Info().Int("changed", changed).Msg("flow modifiers reset")

	return changed
}
