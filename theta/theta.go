// Package theta implements Brezinski's theta algorithm.
//
// Table (column k, diagonal position j), with Δ the forward difference in j:
//
//	θ_{-1}^{(j)} = 0,  θ_0^{(j)} = S(j)
//	θ_{2k+1}^{(j)} = θ_{2k-1}^{(j+1)} + 1 / Δθ_{2k}^{(j)}
//	θ_{2k+2}^{(j)} = θ_{2k}^{(j+1)} + Δθ_{2k}^{(j+1)} · Δθ_{2k+1}^{(j+1)} / Δ²θ_{2k+1}^{(j)}
//
// Each pair of columns consumes three partial sums, so the answer of order k
// anchored at n, θ_{2k}^{(n)}, is built from S(n) … S(n+3k).
//
// A non-finite odd cell is clamped to the overflow sentinel when infinite;
// any other non-finite cell keeps the first term of its recurrence
// (θ_{2k-1}^{(j+1)} or θ_{2k}^{(j+1)}).
//
// Complexity: Time O(order²), Space O(order).
package theta

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/series"
)

const pkg = "theta"

// ErrNilSeries indicates that New received a nil series.
var ErrNilSeries = fmt.Errorf("%s: %w: series is nil", pkg, accel.ErrDomain)

// Options configures the theta accelerator.
type Options struct {
	Logger   *zap.Logger
	Observer accel.Observer
}

// Option represents a functional option for configuring the accelerator.
type Option func(*Options)

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

// Accelerator applies the theta algorithm. It is immutable after New.
type Accelerator[T accel.Float] struct {
	s    series.Series[T]
	diag accel.Diagnostics
}

// New returns a theta accelerator over s.
func New[T accel.Float](s series.Series[T], opts ...Option) *Accelerator[T] {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return &Accelerator[T]{s: s, diag: accel.Diagnostics{Logger: o.Logger, Observer: o.Observer}}
}

// Accelerate returns θ_{2·order}^{(n)}.
func (a *Accelerator[T]) Accelerate(n, order int) (T, error) {
	if a.s == nil {
		return 0, ErrNilSeries
	}
	if err := accel.ValidateArgs(pkg, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return a.s.PartialSum(n), nil
	}

	tol := accel.NewTolerance[T]()
	m := 3 * order
	even := make([]T, m+1)
	for j := range even {
		even[j] = a.s.PartialSum(n + j)
	}
	odd := make([]T, m+1) // θ_{-1}
	for k := 0; k < order; k++ {
		// θ_{2k+1} overwrites θ_{2k−1} in place: cell j reads j+1 only.
		for j := 0; j < len(even)-1; j++ {
			raw := odd[j+1] + 1/(even[j+1]-even[j])
			odd[j] = a.repair(2*k+1, n+j, raw, odd[j+1], tol)
		}
		odd = odd[:len(even)-1]

		// θ_{2k+2} overwrites θ_{2k}: cell j reads j+1, j+2 of even.
		for j := 0; j < len(odd)-2; j++ {
			d1 := odd[j+1] - odd[j]
			d2 := odd[j+2] - odd[j+1]
			raw := even[j+1] + (even[j+2]-even[j+1])*d2/(d2-d1)
			even[j] = a.repair(2*k+2, n+j, raw, even[j+1], tol)
		}
		even = even[:len(odd)-2]
	}

	v := even[0]
	if !accel.IsFinite(v) {
		return 0, accel.Instabilityf(pkg, "θ_%d^(%d) = %v", 2*order, n, float64(v))
	}

	return v, nil
}

// repair returns raw if finite; otherwise the clamp (odd column, ±Inf) or base.
func (a *Accelerator[T]) repair(col, idx int, raw, base T, tol accel.Tolerance[T]) T {
	if accel.IsFinite(raw) {
		return raw
	}
	v, kind := base, accel.Propagated
	if col&1 == 1 && math.IsInf(float64(raw), 0) {
		v, kind = tol.Clamp(raw), accel.Clamped
	}
	if a.diag.Enabled() {
		a.diag.Report(accel.Correction{
			Method: pkg, Column: col, Index: idx, Kind: kind,
			Raw: float64(raw), Value: float64(v),
		})
	}

	return v
}
