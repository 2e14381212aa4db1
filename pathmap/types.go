// SPDX-License-Identifier: MIT

package pathmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/pathway"
)

// Sentinel errors returned by Build.
var (
	// ErrNilModel indicates that no model was supplied.
	ErrNilModel = errors.New("pathmap: model is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("pathmap: option violation")
)

// Options configures Build.
type Options struct {
	// Ctx allows cancellation between levels.
	Ctx context.Context

	// MaxPathLen overrides the model's limit when positive.
	MaxPathLen int

	// OnRecord is called for every recorded pathway. A non-nil error
	// aborts Build.
	OnRecord func(source string, p *pathway.Pathway) error

	// Logger receives one debug line per source and an info summary.
	Logger zerolog.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions uses a background context, the model limit, a no-op hook
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnRecord: func(string, *pathway.Pathway) error { return nil },
		Logger:   zerolog.Nop(),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPathLen bounds the recorded pathway length.
func WithMaxPathLen(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: MaxPathLen must be positive, got %d", ErrOptionViolation, n)
			}
			return
		}
		o.MaxPathLen = n
	}
}

// WithOnRecord registers a hook called for every recorded pathway.
func WithOnRecord(fn func(source string, p *pathway.Pathway) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecord = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Score is the connectivity of one compound.
type Score struct {
	Compound string
	Count    int
}
