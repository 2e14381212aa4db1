// SPDX-License-Identifier: MIT

package paint

import (
	"errors"
	"fmt"
)

// DefaultMaxPathLen bounds the expansion when no limit is configured.
const DefaultMaxPathLen = 100

// Sentinel errors returned by Paint.
var (
	// ErrEmptyTarget indicates that no target compound was given.
	ErrEmptyTarget = errors.New("paint: target compound is empty")

	// ErrNilNetwork indicates that the adjacency source is nil.
	ErrNilNetwork = errors.New("paint: network is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("paint: option violation")
)

// Network yields the compounds one reaction away from a compound in the
// direction being painted.
type Network interface {
	Neighbors(compound string) []string
}

// NetworkFunc adapts a plain function to Network.
type NetworkFunc func(compound string) []string

// Neighbors calls f.
func (f NetworkFunc) Neighbors(compound string) []string { return f(compound) }

// Options configures one painting.
type Options struct {
	// Commons are compounds that are neither painted nor expanded.
	Commons map[string]struct{}

	// MaxPathLen stops expansion of compounds at distance MaxPathLen-1.
	MaxPathLen int

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns an empty commons set and DefaultMaxPathLen.
func DefaultOptions() Options {
	return Options{MaxPathLen: DefaultMaxPathLen}
}

// WithCommons sets the compounds excluded from the painting.
func WithCommons(commons map[string]struct{}) Option {
	return func(o *Options) { o.Commons = commons }
}

// WithMaxPathLen sets the expansion limit; n must be positive.
func WithMaxPathLen(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPathLen must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxPathLen = n
	}
}
