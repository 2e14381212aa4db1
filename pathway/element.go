// SPDX-License-Identifier: MIT

package pathway

import (
	"cmp"

	"github.com/katalvlaran/metapath/core"
)

// Element is one step of a pathway.
type Element struct {
	reaction *core.Reaction
	output   string
	reversed bool
}

// NewElement builds the step that reaches node through r. The step is
// reversed when node is on the reactant side.
func NewElement(r *core.Reaction, node core.Stoich) Element {
	return Element{reaction: r, output: node.Metabolite, reversed: !node.IsProduct()}
}

// Reaction returns the reaction of the step.
func (e Element) Reaction() *core.Reaction { return e.reaction }

// Output returns the compound the step reaches.
func (e Element) Output() string { return e.output }

// IsReversed reports whether the reaction is travelled product to reactant.
func (e Element) IsReversed() bool { return e.reversed }

// Inputs returns the participants consumed by the step.
func (e Element) Inputs() []core.Stoich {
	if e.reversed {
		return e.reaction.Products()
	}

	return e.reaction.Reactants()
}

// Consumes reports whether compound is an input of the step.
func (e Element) Consumes(compound string) bool {
	for _, s := range e.Inputs() {
		if s.Metabolite == compound {
			return true
		}
	}

	return false
}

// flippable reports whether the step may be travelled the other way under
// the reaction's chemistry and its direction overlay.
func (e Element) flippable() bool {
	if !e.reaction.Reversible {
		return false
	}
	if e.reversed {
		return e.reaction.AllowsForward()
	}

	return e.reaction.AllowsReverse()
}

// String renders "CS-->cit_c" or "MDH<--oaa_c" for reversed steps.
func (e Element) String() string {
	arrow := "-->"
	if e.reversed {
		arrow = "<--"
	}

	return e.reaction.BiggID + arrow + e.output
}

// CompareElements orders steps by reaction BiGG ID, output, then reversed.
func CompareElements(a, b Element) int {
	if c := cmp.Compare(a.reaction.BiggID, b.reaction.BiggID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.output, b.output); c != 0 {
		return c
	}
	switch {
	case a.reversed == b.reversed:
		return 0
	case a.reversed:
		return 1
	}

	return -1
}
