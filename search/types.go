// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/internal/observability"
)

// DefaultProgressInterval is the number of processed pathways between
// progress log lines.
const DefaultProgressInterval = 100000

// Sentinel errors returned by New.
var (
	// ErrNilModel indicates that no model was supplied.
	ErrNilModel = errors.New("search: model is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("search: option violation")
)

// Options configures an Engine.
type Options struct {
	// MaxPathLen overrides the model's limit when positive.
	MaxPathLen int

	// ProgressInterval is the number of processed pathways between debug logs.
	ProgressInterval int

	// Logger receives warnings and progress.
	Logger zerolog.Logger

	// Metrics, when set, records search counters.
	Metrics *observability.SearchMetrics

	// Context, when cancelled, ends searches with no pathway.
	Context context.Context

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions uses the model limit, DefaultProgressInterval, a no-op
// logger and a background context.
func DefaultOptions() Options {
	return Options{
		ProgressInterval: DefaultProgressInterval,
		Logger:           zerolog.Nop(),
		Context:          context.Background(),
	}
}

// WithMaxPathLen overrides the model's maximum pathway length.
func WithMaxPathLen(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Errorf("%w: MaxPathLen must be positive, got %d", ErrOptionViolation, n))
			return
		}
		o.MaxPathLen = n
	}
}

// WithProgressInterval sets how often progress is logged.
func WithProgressInterval(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Errorf("%w: ProgressInterval must be positive, got %d", ErrOptionViolation, n))
			return
		}
		o.ProgressInterval = n
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records search metrics.
func WithMetrics(m *observability.SearchMetrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithContext makes searches stop when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.fail(fmt.Errorf("%w: nil context", ErrOptionViolation))
			return
		}
		o.Context = ctx
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
