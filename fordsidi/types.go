// Package fordsidi implements the Ford–Sidi algorithm for the generalized
// Richardson extrapolation process.
//
// The model S(l) = A + Σ_{k=1…p} c_k·g_k(l) is solved for A on l = n … n+p.
// With every quantity u normalised by the first basis function:
//
//	ψ_0^{(j)}(u) = u(j) / g_1(j)
//	ψ_q^{(j)}(u) = Δψ_{q−1}^{(j)}(u) / Δψ_{q−1}^{(j)}(g_{q+1})
//	A_q^{(j)}    = ψ_q^{(j)}(S) / ψ_q^{(j)}(1)
//
// for u ∈ {S, 1, g_{q+2}, …, g_{p+1}}; the answer of order p anchored at n is
// A_p^{(n)}.
//
// New uses g_k(l) = ω(l) / (β+l)^(k−1) over a levin remainder estimate ω,
// which makes A_p^{(n)} the Levin transformation of the same remainder; at
// p = 1 with the t-shifted remainder it is Aitken's Δ². NewWithBasis accepts
// any basis, e.g. g_k(l) = (l+1)^(−k) for Richardson extrapolation in 1/l.
//
// A window whose first basis function vanishes, or whose answer is not
// finite, is moved to anchor n−1, n−2, … 1 and each move is reported as
// accel.Shifted; WithShift(false) turns this off.
//
// Complexity: Time O(order³), Space O(order²).
package fordsidi

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/levin"
)

const pkg = "ford-sidi"

var (
	// ErrNilSeries indicates that New received a nil series.
	ErrNilSeries = fmt.Errorf("%s: %w: series is nil", pkg, accel.ErrDomain)

	// ErrNilBasis indicates that NewWithBasis received a nil basis.
	ErrNilBasis = fmt.Errorf("%s: %w: basis is nil", pkg, accel.ErrDomain)
)

// Basis returns g_k(l) for k ≥ 1.
type Basis[F accel.Float] func(k, l int) F

// Options configures the accelerator.
//
// Remainder – remainder estimate of the default basis (levin.U by default).
// Beta      – β > 0 of the default basis (1 by default).
// Shift     – move a degenerate window to earlier anchors (on by default).
// Logger    – optional; rejected basis values and shifts at Debug level.
// Observer  – optional; receives every shift.
type Options struct {
	Remainder levin.Remainder
	Beta      float64
	Shift     bool
	Logger    *zap.Logger
	Observer  accel.Observer

	// first invalid option, surfaced by Accelerate
	err error
}

// Option represents a functional option for configuring the accelerator.
type Option func(*Options)

// DefaultOptions returns the u remainder, β = 1 and shifting on.
func DefaultOptions() Options {
	return Options{Remainder: levin.U, Beta: 1, Shift: true}
}

// WithRemainder selects the remainder estimate of the default basis.
func WithRemainder(r levin.Remainder) Option {
	return func(o *Options) {
		if r < levin.U || r > levin.VShifted {
			o.record(accel.Domainf(pkg, "unknown remainder %d", int(r)))

			return
		}
		o.Remainder = r
	}
}

// WithBeta sets β of the default basis. A non-positive or non-finite value
// is an ErrDomain reported by Accelerate.
func WithBeta(b float64) Option {
	return func(o *Options) {
		if !(b > 0) || math.IsInf(b, 1) {
			o.record(accel.Domainf(pkg, "beta must be positive and finite, got %v", b))

			return
		}
		o.Beta = b
	}
}

// WithShift enables or disables moving a degenerate window.
func WithShift(on bool) Option {
	return func(o *Options) {
		o.Shift = on
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver delivers every shift to fn.
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
