// Package levin implements the Levin transformation, the Weniger (Sidi) S
// transformation and Drummond's D transformation over a choice of remainder
// estimates.
//
// Both are evaluated in closed form. For order k anchored at n:
//
//	        Σ_j (−1)^j C(k,j) c_j S(n+j) / ω(n+j)
//	T_k^(n) = ─────────────────────────────────────      j = 0 … k
//	        Σ_j (−1)^j C(k,j) c_j / ω(n+j)
//
// with the weight c_j
//
//	Levin     ((β+n+j) / (β+n+k))^(k−1)
//	WenigerS  (β+n+j)_(k−1) / (β+n+k)_(k−1)      (Pochhammer symbols)
//	Drummond  1
//
// and the remainder estimate ω(m) chosen by Remainder:
//
//	U         (β+m)·a(m)
//	T         a(m)
//	V         a(m)·a(m+1) / (a(m) − a(m+1))
//	TShifted  a(m+1)
//	VShifted  a(m+1)·a(m+2) / (a(m+1) − a(m+2))
//
// A zero or non-finite remainder and a non-finite result are reported as
// accel.ErrInstability. β must be positive and finite.
//
// Complexity: Time O(order²) for the weights, Space O(1).
package levin

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
)

const pkg = "levin"

// ErrNilSeries indicates that New received a nil series.
var ErrNilSeries = fmt.Errorf("%s: %w: series is nil", pkg, accel.ErrDomain)

// Kind selects the weight family.
type Kind int

const (
	// Levin uses power weights ((β+n+j)/(β+n+k))^(k−1).
	Levin Kind = iota

	// WenigerS uses Pochhammer weights (β+n+j)_(k−1)/(β+n+k)_(k−1).
	WenigerS

	// Drummond uses unit weights: T_k^(n) = Δ^k(S/ω) / Δ^k(1/ω).
	Drummond
)

var kindNames = [...]string{"levin", "weniger-s", "drummond"}

// String returns the lower-case name used in configuration files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a name produced by String back to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}

	return 0, accel.Domainf(pkg, "unknown kind %q", s)
}

// Remainder selects the remainder estimate ω(m).
type Remainder int

// Remainder estimates; see the package documentation for ω(m).
const (
	U Remainder = iota
	T
	V
	TShifted
	VShifted
)

var remainderNames = [...]string{"u", "t", "v", "t-shifted", "v-shifted"}

// String returns the lower-case name used in configuration files.
func (r Remainder) String() string {
	if r < 0 || int(r) >= len(remainderNames) {
		return fmt.Sprintf("Remainder(%d)", int(r))
	}

	return remainderNames[r]
}

// ParseRemainder maps a name produced by String back to its Remainder.
func ParseRemainder(s string) (Remainder, error) {
	for i, name := range remainderNames {
		if strings.EqualFold(s, name) {
			return Remainder(i), nil
		}
	}

	return 0, accel.Domainf(pkg, "unknown remainder %q", s)
}

// span is how many terms past m the remainder ω(m) reads.
func (r Remainder) span() int {
	switch r {
	case V, TShifted:
		return 1
	case VShifted:
		return 2
	default:
		return 0
	}
}

// Options configures the accelerator.
//
// Kind      – weight family (Levin by default).
// Remainder – remainder estimate (U by default).
// Beta      – β > 0 shifting the weights (1 by default).
// Logger    – optional; a failed remainder is logged at Debug level.
type Options struct {
	Kind      Kind
	Remainder Remainder
	Beta      float64
	Logger    *zap.Logger

	// first invalid option, surfaced by Accelerate
	err error
}

// Option represents a functional option for configuring the accelerator.
type Option func(*Options)

// DefaultOptions returns Levin weights, the u remainder and β = 1.
func DefaultOptions() Options {
	return Options{Kind: Levin, Remainder: U, Beta: 1}
}

// WithKind selects the weight family.
func WithKind(k Kind) Option {
	return func(o *Options) {
		if k < Levin || k > Drummond {
			o.record(accel.Domainf(pkg, "unknown kind %d", int(k)))

			return
		}
		o.Kind = k
	}
}

// WithRemainder selects the remainder estimate.
func WithRemainder(r Remainder) Option {
	return func(o *Options) {
		if r < U || r > VShifted {
			o.record(accel.Domainf(pkg, "unknown remainder %d", int(r)))

			return
		}
		o.Remainder = r
	}
}

// WithBeta sets β. A non-positive or non-finite value is an ErrDomain
// reported by Accelerate.
func WithBeta(b float64) Option {
	return func(o *Options) {
		if !(b > 0) || math.IsInf(b, 1) {
			o.record(accel.Domainf(pkg, "beta must be positive and finite, got %v", b))

			return
		}
		o.Beta = b
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Err returns the first invalid option recorded, if any.
func (o Options) Err() error { return o.err }
