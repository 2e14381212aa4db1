// SPDX-License-Identifier: MIT

package pathway

import (
	"errors"

	"github.com/katalvlaran/metapath/core"
)

// Sentinel errors for pathway operations.
var (
	// ErrIrreversible indicates an attempt to reverse a step that cannot be
	// travelled the other way.
	ErrIrreversible = errors.New("pathway: reaction cannot be reversed")

	// ErrBadDocument indicates a saved pathway that does not fit the model.
	ErrBadDocument = errors.New("pathway: bad pathway document")
)

// SuccessorSource lists the reactions that can consume a compound.
type SuccessorSource interface {
	Successors(compound string) []*core.Reaction
}

// Resolver finds reactions by BiGG ID; nil means unknown.
type Resolver interface {
	Reaction(biggID string) *core.Reaction
}
