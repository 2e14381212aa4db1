// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/core"
)

// Default tuning values.
const (
	// DefaultMaxSuccessors is the successor count above which a compound is common.
	DefaultMaxSuccessors = 20

	// DefaultMaxPathLen bounds pathway length during painting and search.
	DefaultMaxPathLen = 100

	// DefaultMapName is used when the map document names no map.
	DefaultMapName = "Metabolic map"
)

// DefaultCommons are the ubiquitous cofactors and byproducts always treated
// as common compounds.
var DefaultCommons = []string{
	"h_c", "h_p", "h2o_c", "atp_c", "co2_c", "o2_c", "pi_c", "adp_c",
	"glu__D_c", "nadh_p", "nadh_c", "nad_c", "nadph_c", "o2_p", "na1_p",
	"na1_c", "h2o2_c", "h2_c",
}

// Sentinel errors for model construction and lookup.
var (
	// ErrBadFormat indicates a malformed map document.
	ErrBadFormat = errors.New("model: bad map format")

	// ErrDuplicateReaction indicates a reaction ID or BiGG ID is already registered.
	ErrDuplicateReaction = errors.New("model: duplicate reaction")

	// ErrNodeNotFound indicates a lookup of an unknown node ID.
	ErrNodeNotFound = errors.New("model: node not found")

	// ErrMetaboliteNotFound indicates a lookup of a compound with no drawn node.
	ErrMetaboliteNotFound = errors.New("model: metabolite not found")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("model: option violation")
)

// AliasSource resolves gene alias tokens to feature IDs.
type AliasSource interface {
	Features(alias string) []string
}

// Limits are the two tuning scalars bounding search cost.
type Limits struct {
	// MaxSuccessors: compounds with more successors than this are common.
	MaxSuccessors int

	// MaxPathLen: maximum pathway length explored.
	MaxPathLen int
}

// Options configures a Model.
type Options struct {
	Limits
	Commons []string // extra seed compounds beyond DefaultCommons
	MapName string
	Logger  zerolog.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the default limits, no extra commons and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Limits: Limits{
			MaxSuccessors: DefaultMaxSuccessors,
			MaxPathLen:    DefaultMaxPathLen,
		},
		Logger: zerolog.Nop(),
	}
}

// WithMaxSuccessors sets the common-compound threshold; n must be positive.
func WithMaxSuccessors(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Errorf("%w: MaxSuccessors must be positive, got %d", ErrOptionViolation, n))
			return
		}
		o.MaxSuccessors = n
	}
}

// WithMaxPathLen sets the pathway length limit; n must be positive.
func WithMaxPathLen(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Errorf("%w: MaxPathLen must be positive, got %d", ErrOptionViolation, n))
			return
		}
		o.MaxPathLen = n
	}
}

// WithCommons adds seed compounds to DefaultCommons.
func WithCommons(ids ...string) Option {
	return func(o *Options) { o.Commons = append(o.Commons, ids...) }
}

// WithMapName overrides the map name found in the document.
func WithMapName(name string) Option {
	return func(o *Options) { o.MapName = name }
}

// WithLogger sets the logger used for load summaries and warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// ReactionSpec describes a reaction to import into an existing model.
type ReactionSpec struct {
	BiggID     string
	Name       string
	Reversible bool
	Rule       string
	Aliases    []string
	Stoich     []core.Stoich
}
