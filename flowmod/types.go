// SPDX-License-Identifier: MIT

package flowmod

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/core"
)

// ErrParseFailure indicates a modifier row, type or gene list that cannot
// be understood.
var ErrParseFailure = errors.New("flowmod: parse failure")

// Kind is the effect of a modifier.
type Kind int

const (
	// Suppress disables the reaction in both directions.
	Suppress Kind = iota

	// ForwardOnly allows only reactants → products, even for a reversible reaction.
	ForwardOnly
)

// String returns the canonical table name of k.
func (k Kind) String() string {
	switch k {
	case Suppress:
		return "suppress"
	case ForwardOnly:
		return "forward"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Direction returns the overlay k imposes.
func (k Kind) Direction() core.Direction {
	if k == ForwardOnly {
		return core.Forward
	}

	return core.Neither
}

// ParseKind converts a case-insensitive modifier type. "suppress" and
// "neither" select Suppress; "forward" and "forward-only" select ForwardOnly.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suppress", "neither":
		return Suppress, nil
	case "forward", "forward-only", "forward_only":
		return ForwardOnly, nil
	}

	return Suppress, fmt.Errorf("%w: unknown modifier type %q", ErrParseFailure, s)
}

// ReactionSource exposes the reactions a List is applied to.
type ReactionSource interface {
	Reactions() []*core.Reaction
}

// Options configures a List.
type Options struct {
	// Logger receives a summary line for every Apply and Reset.
	Logger zerolog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions logs nowhere.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
