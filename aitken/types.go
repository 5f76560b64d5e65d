package aitken

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
)

const pkg = "aitken"

// Options configures the Aitken rhombus.
//
// Alternating – use the reduced first-level form suited to alternating terms.
// Logger      – optional; propagated cells are logged at Debug level.
// Observer    – optional; receives every propagated cell.
type Options struct {
	Alternating bool
	Logger      *zap.Logger
	Observer    accel.Observer
}

// Option represents a functional option for configuring the rhombus.
type Option func(*Options)

// DefaultOptions returns the standard first-level form and no diagnostics.
func DefaultOptions() Options {
	return Options{}
}

// WithAlternating selects T_1(i) = S(i) + a(i)a(i+1)/(a(i)−a(i+1)).
func WithAlternating() Option {
	return func(o *Options) {
		o.Alternating = true
	}
}

// WithLogger reports propagated cells to l at Debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver delivers every propagated cell to fn.
func WithObserver(fn accel.Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}
