// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/metapath/core"
	"github.com/katalvlaran/metapath/pathway"
)

// ErrParseFailure indicates filter parameters that do not fit the model.
var ErrParseFailure = errors.New("filter: parse failure")

// Filter is a pathway predicate used during search. Filters never modify
// the pathway they inspect.
type Filter interface {
	IsPossible(p *pathway.Pathway) bool
	IsGood(p *pathway.Pathway) bool
}

// Catalog is the part of a model filters validate names against.
type Catalog interface {
	Reaction(biggID string) *core.Reaction
	HasCompound(compound string) bool
}

// Params carries the names a filter is built from.
type Params struct {
	Include []string // required reaction BiGG IDs
	Avoid   []string // forbidden compound IDs
	Model   Catalog  // names are validated against it when non-nil
}

// Kind selects a filter implementation.
type Kind int

const (
	// KindNone accepts everything.
	KindNone Kind = iota

	// KindReactions requires reactions (Include).
	KindReactions

	// KindAvoid forbids compounds (Avoid).
	KindAvoid
)

var kindNames = [...]string{"none", "reactions", "avoid"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < KindNone || k > KindAvoid {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind converts a case-insensitive kind name. "include" is accepted
// for KindReactions.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "include" {
		return KindReactions, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return KindNone, fmt.Errorf("%w: unknown filter type %q", ErrParseFailure, s)
}
