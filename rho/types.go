// Package rho implements Wynn's rho algorithm, the reciprocal-difference
// scheme suited to logarithmically converging sequences, with pluggable
// numerators.
//
// Table (column k, diagonal position j):
//
//	ρ_{-1}^{(j)} = 0,  ρ_0^{(j)} = S(j)
//	ρ_{k+1}^{(j)} = ρ_{k-1}^{(j+1)} + C(k+1) / (ρ_k^{(j+1)} − ρ_k^{(j)})
//
// Numerators C(k):
//
//	Classic      C(k) = k
//	Generalized  C(k) = k − 1 + γ                     (γ > 0)
//	GammaRho     C(k) = γ − 1 + ⌊k/2⌋/ρ + (k mod 2)    (γ > 0, ρ > 0)
//
// With the defaults γ = 1 and ρ = 1/2 every numerator reduces to Classic.
// γ is kept positive: the common form k − γ − 1 of the generalized numerator
// is γ = −γ' here, and −γ' + ⌊k/2⌋/ρ + (k mod 2) of γ-ρ is γ = 1 − γ'.
// The answer of order k anchored at n is ρ_{2k}^{(n)}, built from
// S(n) … S(n+2k) by an explicit iterative fill.
//
// Invalid parameters are recorded by the options and surfaced as
// accel.ErrDomain by Accelerate, before any table work.
package rho

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
)

const pkg = "rho"

// ErrNilSeries indicates that New received a nil series.
var ErrNilSeries = fmt.Errorf("%s: %w: series is nil", pkg, accel.ErrDomain)

// Numerator selects the numerator sequence C(k) of the recurrence.
type Numerator int

const (
	// Classic uses C(k) = k.
	Classic Numerator = iota

	// Generalized uses C(k) = k − 1 + γ.
	Generalized

	// GammaRho uses C(k) = γ − 1 + ⌊k/2⌋/ρ + (k mod 2).
	GammaRho
)

var numeratorNames = [...]string{"classic", "generalized", "gamma-rho"}

// String returns the lower-case name used in configuration files.
func (n Numerator) String() string {
	if n < 0 || int(n) >= len(numeratorNames) {
		return fmt.Sprintf("Numerator(%d)", int(n))
	}

	return numeratorNames[n]
}

// ParseNumerator maps a name produced by String back to its Numerator.
func ParseNumerator(s string) (Numerator, error) {
	for i, name := range numeratorNames {
		if strings.EqualFold(s, name) {
			return Numerator(i), nil
		}
	}

	return 0, accel.Domainf(pkg, "unknown numerator %q", s)
}

// Options configures the rho accelerator.
//
// Numerator – numerator sequence (Classic by default).
// Gamma     – γ of Generalized and GammaRho (1 by default, must be > 0).
// Rho       – ρ of GammaRho (0.5 by default, must be > 0).
// Logger    – optional; repaired cells are logged at Debug level.
// Observer  – optional; receives every repaired cell.
type Options struct {
	Numerator Numerator
	Gamma     float64
	Rho       float64
	Logger    *zap.Logger
	Observer  accel.Observer

	// first invalid option, surfaced by Accelerate
	err error
}

// Option represents a functional option for configuring the accelerator.
type Option func(*Options)

// DefaultOptions returns the Classic numerator with γ = 1, ρ = 1/2.
func DefaultOptions() Options {
	return Options{Numerator: Classic, Gamma: 1, Rho: 0.5}
}

// WithNumerator selects the numerator sequence.
func WithNumerator(n Numerator) Option {
	return func(o *Options) {
		if n < Classic || n > GammaRho {
			o.record(accel.Domainf(pkg, "unknown numerator %d", int(n)))

			return
		}
		o.Numerator = n
	}
}

// WithGamma sets γ. A non-positive or non-finite value is an ErrDomain
// reported by Accelerate.
func WithGamma(g float64) Option {
	return func(o *Options) {
		if !(g > 0) || math.IsInf(g, 1) {
			o.record(accel.Domainf(pkg, "gamma must be positive and finite, got %v", g))

			return
		}
		o.Gamma = g
	}
}

// WithRho sets ρ. A non-positive or non-finite value is an ErrDomain
// reported by Accelerate.
func WithRho(r float64) Option {
	return func(o *Options) {
		if !(r > 0) || math.IsInf(r, 1) {
			o.record(accel.Domainf(pkg, "rho must be positive and finite, got %v", r))

			return
		}
		o.Rho = r
	}
}

// WithLogger reports repaired cells to l at Debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver delivers every repaired cell to fn.
func WithObserver(fn accel.Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Err returns the first invalid option recorded, if any.
func (o Options) Err() error { return o.err }

// numerator returns C(k) for the new column k >= 1.
func (o Options) numerator(k int) float64 {
	switch o.Numerator {
	case Generalized:
		return float64(k) - 1 + o.Gamma
	case GammaRho:
		return o.Gamma - 1 + float64(k/2)/o.Rho + float64(k&1)
	default:
		return float64(k)
	}
}
