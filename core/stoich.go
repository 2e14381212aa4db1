// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"strconv"
)

// Stoich is one participant of a reaction.
// Coefficient < 0 marks a reactant, Coefficient > 0 a product.
type Stoich struct {
	Metabolite  string
	Coefficient int
}

// IsProduct reports whether the entry is on the product side.
func (s Stoich) IsProduct() bool { return s.Coefficient > 0 }

// Count returns the absolute number of molecules.
func (s Stoich) Count() int {
	if s.Coefficient < 0 {
		return -s.Coefficient
	}

	return s.Coefficient
}

// String renders "metabolite" or "n*metabolite" for multi-molecule entries.
func (s Stoich) String() string {
	if n := s.Count(); n != 1 {
		return strconv.Itoa(n) + "*" + s.Metabolite
	}

	return s.Metabolite
}

// CompareStoich orders entries by coefficient, then by metabolite.
func CompareStoich(a, b Stoich) int {
	if c := cmp.Compare(a.Coefficient, b.Coefficient); c != 0 {
		return c
	}

	return cmp.Compare(a.Metabolite, b.Metabolite)
}
