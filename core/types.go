// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for reaction and node construction.
var (
	// ErrEmptyBiggID indicates a reaction was created without a BiGG identifier.
	ErrEmptyBiggID = errors.New("core: reaction BiGG ID is empty")

	// ErrEmptyMetabolite indicates a stoichiometry entry has no metabolite.
	ErrEmptyMetabolite = errors.New("core: stoichiometry metabolite is empty")

	// ErrZeroCoefficient indicates a stoichiometry entry with a zero coefficient.
	ErrZeroCoefficient = errors.New("core: stoichiometry coefficient is zero")

	// ErrBadDirection indicates an unknown direction name.
	ErrBadDirection = errors.New("core: unknown direction")
)

// Direction is the traversal overlay of a reaction (ActiveDirections).
// The zero value Both leaves the chemical reversibility in charge.
type Direction int

const (
	// Both allows forward travel and, for reversible reactions, reverse travel.
	Both Direction = iota

	// Forward allows forward travel only.
	Forward

	// Reverse allows reverse travel only (reversible reactions).
	Reverse

	// Neither disables the reaction entirely.
	Neither
)

var directionNames = [...]string{"BOTH", "FORWARD", "REVERSE", "NEITHER"}

// String returns the upper-case name of d.
func (d Direction) String() string {
	if d < Both || d > Neither {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// ParseDirection converts a case-insensitive name into a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}

	return Both, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// ReactionOption configures a Reaction at construction time.
type ReactionOption func(r *Reaction)

// WithReversible marks the reaction as chemically reversible.
func WithReversible(rev bool) ReactionOption {
	return func(r *Reaction) { r.Reversible = rev }
}

// WithRule sets the gene rule and derives the trigger tokens from it.
func WithRule(rule string) ReactionOption {
	return func(r *Reaction) { r.setRule(rule) }
}

// WithLabel sets the label position of the reaction on the map.
func WithLabel(x, y float64) ReactionOption {
	return func(r *Reaction) { r.Label = Coordinate{X: x, Y: y} }
}

// WithStoich adds one stoichiometry entry.
// Invalid entries are ignored here; use AddStoich to see the error.
func WithStoich(metabolite string, coefficient int) ReactionOption {
	return func(r *Reaction) { _ = r.AddStoich(metabolite, coefficient) }
}

// WithAliases adds gene alias tokens (gene BiGG IDs and gene names).
func WithAliases(aliases ...string) ReactionOption {
	return func(r *Reaction) { r.AddAliases(aliases...) }
}
