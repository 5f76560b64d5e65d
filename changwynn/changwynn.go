// Package changwynn implements the Chang–Wynn generalization of the epsilon
// algorithm (Chang, He, Hu, Sun and Weniger, 2019).
//
// Table (column k, diagonal position j), with Δ the forward difference in j:
//
//	T_0^{(j)} = S(j),  T_1^{(j)} = 1 / ΔS(j)
//	T_2^{(j)} = S(j+1) − ΔS(j)·ΔS(j+1)·Δ²S(j+1) / D^{(j)}
//	F^{(j)}   = Δ²S(j)·Δ²S(j+1) / D^{(j)}
//	D^{(j)}   = ΔS(j+2)·Δ²S(j) − ΔS(j)·Δ²S(j+1)
//	T_{k+1}^{(j)} = T_{k−1}^{(j+1)} + (1 − k + k·F^{(j)}) / ΔT_k^{(j)}    k ≥ 2
//
// With F ≡ 1 the recurrence is Wynn's epsilon rule; F is 1 on a geometric
// sequence, where T_2 is already exact. Even columns are the estimates: the
// answer of order k anchored at n, T_{2k}^{(n)}, is built from
// S(n) … S(n+2k+1).
//
// Degenerate cells are repaired like the theta table: an infinite odd cell
// is clamped to the overflow sentinel, any other non-finite cell keeps the
// first term of its recurrence. A non-finite F^{(j)} falls back to 1 and is
// reported as a propagated cell of column 2.
//
// Complexity: Time O(order²), Space O(order).
package changwynn

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/series"
)

const pkg = "chang-wynn"

// ErrNilSeries indicates that New received a nil series.
var ErrNilSeries = fmt.Errorf("%s: %w: series is nil", pkg, accel.ErrDomain)

// Options configures the Chang–Wynn accelerator.
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

// Accelerator applies the Chang–Wynn algorithm. It is immutable after New.
type Accelerator[T accel.Float] struct {
	s    series.Series[T]
	diag accel.Diagnostics
}

// New returns a Chang–Wynn accelerator over s.
func New[T accel.Float](s series.Series[T], opts ...Option) *Accelerator[T] {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return &Accelerator[T]{s: s, diag: accel.Diagnostics{Logger: o.Logger, Observer: o.Observer}}
}

// Accelerate returns T_{2·order}^{(n)}.
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
	m := 2 * order
	sums := make([]T, m+2)
	for j := range sums {
		sums[j] = a.s.PartialSum(n + j)
	}
	d := make([]T, m+1)
	for j := range d {
		d[j] = sums[j+1] - sums[j]
	}

	odd := make([]T, m)
	for j := range odd {
		odd[j] = a.repair(1, n+j, 1/d[j], 0, tol)
	}
	even := make([]T, m-1)
	f := make([]T, m-1)
	for j := range even {
		dd0 := d[j+1] - d[j]   // Δ²S(j)
		dd1 := d[j+2] - d[j+1] // Δ²S(j+1)
		den := d[j+2]*dd0 - d[j]*dd1
		even[j] = a.repair(2, n+j, sums[j+1]-d[j]*d[j+1]*dd1/den, sums[j+1], tol)
		f[j] = a.factor(n+j, dd0*dd1/den)
	}

	// prev holds T_{k−1}, cur holds T_k; T_{k+1} overwrites prev in place
	// since cell j reads prev[j+1] only.
	prev, cur := odd, even
	for k := 2; k < m; k++ {
		for j := 0; j < len(cur)-1; j++ {
			raw := prev[j+1] + (T(1-k)+T(k)*f[j])/(cur[j+1]-cur[j])
			prev[j] = a.repair(k+1, n+j, raw, prev[j+1], tol)
		}
		prev, cur = cur, prev[:len(cur)-1]
	}

	v := cur[0]
	if !accel.IsFinite(v) {
		return 0, accel.Instabilityf(pkg, "T_%d^(%d) = %v", m, n, float64(v))
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
	a.report(col, idx, kind, raw, v)

	return v
}

// factor returns F^{(idx)}, or 1 when it is not finite.
func (a *Accelerator[T]) factor(idx int, raw T) T {
	if accel.IsFinite(raw) {
		return raw
	}
	a.report(2, idx, accel.Propagated, raw, 1)

	return 1
}

func (a *Accelerator[T]) report(col, idx int, kind accel.CorrectionKind, raw, v T) {
	if a.diag.Enabled() {
		a.diag.Report(accel.Correction{
			Method: pkg, Column: col, Index: idx, Kind: kind,
			Raw: float64(raw), Value: float64(v),
		})
	}
}
