// SPDX-License-Identifier: MIT

package pathway

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/metapath/core"
)

// Pathway is an ordered route through the network plus a goal compound.
type Pathway struct {
	elements []Element
	goal     string
}

// New starts a pathway with the step reaching node through r.
func New(r *core.Reaction, node core.Stoich) *Pathway {
	return &Pathway{elements: []Element{NewElement(r, node)}}
}

// NewWithGoal is New followed by SetGoal.
func NewWithGoal(r *core.Reaction, node core.Stoich, goal string) *Pathway {
	p := New(r, node)
	p.goal = goal

	return p
}

// Add appends the step reaching node through r and returns p.
// The caller guarantees r can consume the current terminus.
func (p *Pathway) Add(r *core.Reaction, node core.Stoich) *Pathway {
	p.elements = append(p.elements, NewElement(r, node))

	return p
}

// Extend returns a clone of p with one more step; p is unchanged.
func (p *Pathway) Extend(r *core.Reaction, node core.Stoich) *Pathway {
	out := &Pathway{elements: make([]Element, len(p.elements), len(p.elements)+1), goal: p.goal}
	copy(out.elements, p.elements)

	return out.Add(r, node)
}

// Clone returns an independent copy sharing the immutable elements.
func (p *Pathway) Clone() *Pathway {
	return &Pathway{elements: slices.Clone(p.elements), goal: p.goal}
}

// Contains reports whether r is already used by a step.
func (p *Pathway) Contains(r *core.Reaction) bool {
	for _, e := range p.elements {
		if e.reaction.ID == r.ID {
			return true
		}
	}

	return false
}

// IncludesAll reports whether every BiGG ID in ids names a step's reaction.
func (p *Pathway) IncludesAll(ids []string) bool {
	for _, id := range ids {
		if !slices.ContainsFunc(p.elements, func(e Element) bool { return e.reaction.BiggID == id }) {
			return false
		}
	}

	return true
}

// Len returns the number of steps.
func (p *Pathway) Len() int { return len(p.elements) }

// Element returns step i.
func (p *Pathway) Element(i int) Element { return p.elements[i] }

// Elements returns a copy of the steps.
func (p *Pathway) Elements() []Element { return slices.Clone(p.elements) }

// First returns the first step.
func (p *Pathway) First() Element { return p.elements[0] }

// Last returns the last step.
func (p *Pathway) Last() Element { return p.elements[len(p.elements)-1] }

// Origin returns the compounds consumed by the first step, in
// stoichiometry order. It is empty for an empty pathway.
func (p *Pathway) Origin() []string {
	if len(p.elements) == 0 {
		return nil
	}
	inputs := p.elements[0].Inputs()
	out := make([]string, len(inputs))
	for i, s := range inputs {
		out[i] = s.Metabolite
	}

	return out
}

// Prefix returns a copy of the first n steps with the same goal.
func (p *Pathway) Prefix(n int) *Pathway {
	n = min(max(n, 0), len(p.elements))

	return &Pathway{elements: slices.Clone(p.elements[:n]), goal: p.goal}
}

// Terminus returns the compound reached by the last step.
func (p *Pathway) Terminus() string { return p.Last().output }

// Goal returns the target compound.
func (p *Pathway) Goal() string { return p.goal }

// SetGoal replaces the target compound.
func (p *Pathway) SetGoal(goal string) { p.goal = goal }

// IsComplete reports whether the terminus is the goal.
func (p *Pathway) IsComplete() bool {
	return len(p.elements) > 0 && p.Terminus() == p.goal
}

// IsReversible reports whether every step may be travelled backward.
func (p *Pathway) IsReversible() bool {
	for _, e := range p.elements {
		if !e.flippable() {
			return false
		}
	}

	return true
}

// Reverse builds the mirror pathway ending at output, which must be an
// input of the first step. Intermediate outputs are re-derived backward:
// step i of the mirror reaches the compound that preceded it in p. The
// mirror's goal is output.
func (p *Pathway) Reverse(output string) (*Pathway, error) {
	n := len(p.elements)
	if n == 0 {
		return &Pathway{goal: output}, nil
	}

	// 1) outputs[0] = new final output, outputs[i] = output of step i-1.
	outputs := make([]string, n)
	outputs[0] = output
	for i := 1; i < n; i++ {
		outputs[i] = p.elements[i-1].output
	}

	// 2) walk p backward, flipping each step.
	out := &Pathway{elements: make([]Element, 0, n), goal: output}
	for i := n - 1; i >= 0; i-- {
		e := p.elements[i]
		if !e.flippable() {
			return nil, fmt.Errorf("%w: %s", ErrIrreversible, e.reaction.BiggID)
		}
		out.elements = append(out.elements, Element{
			reaction: e.reaction,
			output:   outputs[i],
			reversed: !e.reversed,
		})
	}

	return out, nil
}

// Branches returns, for every intermediate output, the reactions that
// could also consume it but are not on the pathway. The final output is
// excluded; compounds with no side reactions are omitted.
func (p *Pathway) Branches(src SuccessorSource) map[string][]*core.Reaction {
	out := make(map[string][]*core.Reaction)
	for i := 0; i < len(p.elements)-1; i++ {
		c := p.elements[i].output
		for _, r := range src.Successors(c) {
			if !p.Contains(r) && !slices.Contains(out[c], r) {
				out[c] = append(out[c], r)
			}
		}
	}

	return out
}

// String renders the steps separated by spaces.
func (p *Pathway) String() string {
	parts := make([]string, len(p.elements))
	for i, e := range p.elements {
		parts[i] = e.String()
	}

	return strings.Join(parts, " ")
}

// Compare orders shorter pathways first, then element by element.
func Compare(a, b *Pathway) int {
	if c := cmp.Compare(len(a.elements), len(b.elements)); c != 0 {
		return c
	}

	return slices.CompareFunc(a.elements, b.elements, CompareElements)
}
