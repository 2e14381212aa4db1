// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/metapath/pathway"
)

// New builds the filter selected by kind.
func New(kind Kind, params Params) (Filter, error) {
	switch kind {
	case KindNone:
		return None{}, nil
	case KindReactions:
		return NewInclude(params)
	case KindAvoid:
		return NewAvoid(params)
	}

	return nil, fmt.Errorf("%w: unknown filter kind %v", ErrParseFailure, kind)
}

// None accepts every pathway.
type None struct{}

// IsPossible always returns true.
func (None) IsPossible(*pathway.Pathway) bool { return true }

// IsGood always returns true.
func (None) IsGood(*pathway.Pathway) bool { return true }

// Avoid rejects pathways that pass through a forbidden compound.
type Avoid struct {
	forbidden map[string]struct{}
}

// NewAvoid builds an Avoid filter from params.Avoid.
func NewAvoid(params Params) (*Avoid, error) {
	if len(params.Avoid) == 0 {
		return nil, fmt.Errorf("%w: no compounds to avoid", ErrParseFailure)
	}
	f := &Avoid{forbidden: make(map[string]struct{}, len(params.Avoid))}
	for _, c := range params.Avoid {
		if params.Model != nil && !params.Model.HasCompound(c) {
			return nil, fmt.Errorf("%w: compound %q not found in model", ErrParseFailure, c)
		}
		f.forbidden[c] = struct{}{}
	}

	return f, nil
}

// IsPossible fails when the terminus is forbidden. Earlier steps were
// checked when they were the terminus.
func (f *Avoid) IsPossible(p *pathway.Pathway) bool {
	_, bad := f.forbidden[p.Terminus()]

	return !bad
}

// IsGood always returns true.
func (f *Avoid) IsGood(*pathway.Pathway) bool { return true }

// Include requires a set of reactions to appear on the pathway.
type Include struct {
	required []string
}

// NewInclude builds an Include filter from params.Include.
func NewInclude(params Params) (*Include, error) {
	if len(params.Include) == 0 {
		return nil, fmt.Errorf("%w: no reactions to include", ErrParseFailure)
	}
	for _, id := range params.Include {
		if params.Model != nil && params.Model.Reaction(id) == nil {
			return nil, fmt.Errorf("%w: reaction %q not found in model", ErrParseFailure, id)
		}
	}

	return &Include{required: slices.Clone(params.Include)}, nil
}

// IsPossible always returns true: a required reaction may still be added.
func (f *Include) IsPossible(*pathway.Pathway) bool { return true }

// IsGood reports whether every required reaction is on the pathway.
func (f *Include) IsGood(p *pathway.Pathway) bool { return p.IncludesAll(f.required) }

// AllPossible reports whether p passes IsPossible of every filter.
func AllPossible(filters []Filter, p *pathway.Pathway) bool {
	for _, f := range filters {
		if !f.IsPossible(p) {
			return false
		}
	}

	return true
}

// AllPossibleAlong reports whether every prefix of p, up to p itself,
// passes AllPossible. It vets pathways that were not grown step by step
// under the filters, such as loaded ones.
func AllPossibleAlong(filters []Filter, p *pathway.Pathway) bool {
	if len(filters) == 0 {
		return true
	}
	for n := 1; n < p.Len(); n++ {
		if !AllPossible(filters, p.Prefix(n)) {
			return false
		}
	}

	return AllPossible(filters, p)
}

// AllGood reports whether p passes IsGood of every filter.
func AllGood(filters []Filter, p *pathway.Pathway) bool {
	for _, f := range filters {
		if !f.IsGood(p) {
			return false
		}
	}

	return true
}
