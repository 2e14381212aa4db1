// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Reaction is one metabolic reaction of a model.
//
// Identity is the internal ID: two reactions are the same reaction iff their
// IDs match, and reactions order by ID. Everything except the Active overlay
// is fixed once the reaction has been registered with a model.
type Reaction struct {
	ID         int
	BiggID     string
	Name       string
	Reversible bool
	Rule       string
	Label      Coordinate

	aliases  []string // sorted gene tokens from the genes list and the rule
	triggers []string // sorted gene tokens from the rule only
	stoich   []Stoich // sorted by CompareStoich
	active   Direction
}

// NewReaction builds a reaction. The BiGG ID must be non-empty.
//
// Example:
//
//	r, err := core.NewReaction(7, "FUM", "fumarase",
//	    core.WithReversible(true),
//	    core.WithRule("b1611 or b1612"),
//	    core.WithStoich("fum_c", -1),
//	    core.WithStoich("h2o_c", -1),
//	    core.WithStoich("mal__L_c", 1))
func NewReaction(id int, biggID, name string, opts ...ReactionOption) (*Reaction, error) {
	if biggID == "" {
		return nil, ErrEmptyBiggID
	}
	r := &Reaction{ID: id, BiggID: biggID, Name: name}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// setRule stores the rule, parses its tokens and folds them into the aliases.
func (r *Reaction) setRule(rule string) {
	r.Rule = strings.TrimSpace(rule)
	r.triggers = ParseTriggers(r.Rule)
	r.AddAliases(r.triggers...)
}

// AddAliases merges gene alias tokens into the reaction.
func (r *Reaction) AddAliases(aliases ...string) {
	r.aliases = NormalizeTokens(append(slices.Clone(r.aliases), aliases...))
}

// Aliases returns the sorted gene alias tokens.
func (r *Reaction) Aliases() []string { return slices.Clone(r.aliases) }

// Triggers returns the sorted gene tokens named by the rule.
func (r *Reaction) Triggers() []string { return slices.Clone(r.triggers) }

// AddStoich inserts a participant while keeping the stoichiometry sorted.
// A metabolite already present has its coefficient replaced.
func (r *Reaction) AddStoich(metabolite string, coefficient int) error {
	if metabolite == "" {
		return ErrEmptyMetabolite
	}
	if coefficient == 0 {
		return fmt.Errorf("%w: %s in %s", ErrZeroCoefficient, metabolite, r.BiggID)
	}
	r.stoich = slices.DeleteFunc(r.stoich, func(s Stoich) bool { return s.Metabolite == metabolite })
	s := Stoich{Metabolite: metabolite, Coefficient: coefficient}
	i, _ := slices.BinarySearchFunc(r.stoich, s, CompareStoich)
	r.stoich = slices.Insert(r.stoich, i, s)

	return nil
}

// Stoichiometry returns a copy of all participants in sorted order.
func (r *Reaction) Stoichiometry() []Stoich { return slices.Clone(r.stoich) }

// Reactants returns the participants with negative coefficients.
func (r *Reaction) Reactants() []Stoich { return r.side(false) }

// Products returns the participants with positive coefficients.
func (r *Reaction) Products() []Stoich { return r.side(true) }

func (r *Reaction) side(products bool) []Stoich {
	out := make([]Stoich, 0, len(r.stoich))
	for _, s := range r.stoich {
		if s.IsProduct() == products {
			out = append(out, s)
		}
	}

	return out
}

// find returns the entry for compound, if the compound participates.
func (r *Reaction) find(compound string) (Stoich, bool) {
	for _, s := range r.stoich {
		if s.Metabolite == compound {
			return s, true
		}
	}

	return Stoich{}, false
}

// Has reports whether compound participates in the reaction.
func (r *Reaction) Has(compound string) bool {
	_, ok := r.find(compound)

	return ok
}

// IsProduct reports whether compound appears with a positive coefficient.
func (r *Reaction) IsProduct(compound string) bool {
	s, ok := r.find(compound)

	return ok && s.IsProduct()
}

// Active returns the direction overlay.
func (r *Reaction) Active() Direction { return r.active }

// SetActive replaces the direction overlay.
func (r *Reaction) SetActive(d Direction) { r.active = d }

// AllowsForward reports whether reactants may be turned into products.
func (r *Reaction) AllowsForward() bool {
	return r.active == Both || r.active == Forward
}

// AllowsReverse reports whether products may be turned into reactants.
func (r *Reaction) AllowsReverse() bool {
	return r.Reversible && (r.active == Both || r.active == Reverse)
}

// CanConsume reports whether the reaction can take compound as an input
// under the current overlay.
func (r *Reaction) CanConsume(compound string) bool {
	s, ok := r.find(compound)
	if !ok {
		return false
	}
	if s.IsProduct() {
		return r.AllowsReverse()
	}

	return r.AllowsForward()
}

// CanProduce reports whether the reaction can yield compound under the
// current overlay.
func (r *Reaction) CanProduce(compound string) bool {
	s, ok := r.find(compound)
	if !ok {
		return false
	}
	if s.IsProduct() {
		return r.AllowsForward()
	}

	return r.AllowsReverse()
}

// Outputs returns the entries reachable from input by travelling through
// the reaction: the product side for a reactant input, the reactant side
// for a product input of a reversible reaction. The result is empty when
// input does not participate or the overlay forbids the needed direction.
func (r *Reaction) Outputs(input string) []Stoich {
	if !r.CanConsume(input) {
		return nil
	}

	return r.side(!r.IsProduct(input))
}

// Inputs returns the entries that must be consumed to yield output: the
// reactant side for a product, the product side for a reactant of a
// reversible reaction. It is the mirror of Outputs.
func (r *Reaction) Inputs(output string) []Stoich {
	if !r.CanProduce(output) {
		return nil
	}

	return r.side(!r.IsProduct(output))
}

// Formula renders the reaction as "a + 2*b --> c", using "<->" when the
// reaction is reversible.
func (r *Reaction) Formula() string {
	arrow := " --> "
	if r.Reversible {
		arrow = " <-> "
	}

	return joinStoich(r.Reactants()) + arrow + joinStoich(r.Products())
}

func joinStoich(list []Stoich) string {
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = s.String()
	}

	return strings.Join(parts, " + ")
}

// String returns the BiGG ID.
func (r *Reaction) String() string { return r.BiggID }

// CompareReactions orders reactions by internal ID.
func CompareReactions(a, b *Reaction) int { return cmp.Compare(a.ID, b.ID) }
