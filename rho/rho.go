package rho

import (
	"math"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/series"
)

// Accelerator applies Wynn's rho algorithm. It is immutable after New.
type Accelerator[T accel.Float] struct {
	s    series.Series[T]
	opts Options
}

// New returns a rho accelerator over s. Invalid options are reported by
// Accelerate, not here.
func New[T accel.Float](s series.Series[T], opts ...Option) *Accelerator[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Accelerator[T]{s: s, opts: o}
}

// Options returns a copy of the configuration.
func (a *Accelerator[T]) Options() Options { return a.opts }

// Accelerate returns ρ_{2·order}^{(n)}.
//
// Steps:
//  1. Surface recorded option errors and validate (n, order).
//  2. Seed column 0 with S(n) … S(n+2·order).
//  3. Fill columns 1 … 2·order; a non-finite cell is clamped (odd column,
//     ±Inf) or replaced by ρ_{k−1}^{(j)}.
//  4. Check the single cell of the last column is finite.
func (a *Accelerator[T]) Accelerate(n, order int) (T, error) {
	if a.s == nil {
		return 0, ErrNilSeries
	}
	if err := a.opts.err; err != nil {
		return 0, err
	}
	if err := accel.ValidateArgs(pkg, n, order); err != nil {
		return 0, err
	}
	if order == 0 {
		return a.s.PartialSum(n), nil
	}

	m := 2 * order
	tol := accel.NewTolerance[T]()
	diag := accel.Diagnostics{Logger: a.opts.Logger, Observer: a.opts.Observer}

	// prev is column k−1, cur column k; both indexed by j − n.
	prev := make([]T, m+1)
	cur := make([]T, m+1)
	for j := range cur {
		cur[j] = a.s.PartialSum(n + j)
	}
	for k := 0; k < m; k++ {
		col := k + 1
		c := T(a.opts.numerator(col))
		for j := 0; j+col <= m; j++ {
			raw := prev[j+1] + c/(cur[j+1]-cur[j])
			v := raw
			if !accel.IsFinite(raw) {
				kind := accel.Propagated
				if col&1 == 1 && math.IsInf(float64(raw), 0) {
					v, kind = tol.Clamp(raw), accel.Clamped
				} else {
					v = prev[j]
				}
				if diag.Enabled() {
					diag.Report(accel.Correction{
						Method: pkg, Column: col, Index: n + j, Kind: kind,
						Raw: float64(raw), Value: float64(v),
					})
				}
			}
			// Column k−1 at j is dead once column k+1 at j exists.
			prev[j] = v
		}
		prev, cur = cur, prev
	}

	v := cur[0]
	if !accel.IsFinite(v) {
		return 0, accel.Instabilityf(pkg, "ρ_%d^(%d) = %v", m, n, float64(v))
	}

	return v, nil
}
