package schema

import (
	"io"
	"log/slog"
)

// Options control a validation run.
type Options struct {
	// AbortEarly limits a run to a single recorded violation.
	AbortEarly bool

	// AllowUnknown passes undeclared object keys through. When false each
	// undeclared key is recorded as an unknown violation.
	AllowUnknown bool

	// StripUnknown removes undeclared object keys from the result.
	StripUnknown bool

	// Concurrency bounds how many sibling properties are walked at once on
	// the asynchronous path. Values below 2 walk sequentially.
	Concurrency int

	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

func WithAbortEarly() Option {
	return func(o *Options) { o.AbortEarly = true }
}

func WithAllowUnknown(allow bool) Option {
	return func(o *Options) { o.AllowUnknown = allow }
}

func WithStripUnknown() Option {
	return func(o *Options) { o.StripUnknown = true }
}

// WithConcurrency sets the sibling fan-out limit of ValidateAsync.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}

// WithLogger supplies a logger. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{AllowUnknown: true, Concurrency: 1}
}

func (o Options) apply(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func newOptions(opts ...Option) Options {
	return defaultOptions().apply(opts...)
}
