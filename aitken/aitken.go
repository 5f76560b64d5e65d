package aitken

import (
	"fmt"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/series"
)

// ErrNilSeries indicates that New received a nil series.
var ErrNilSeries = fmt.Errorf("%s: %w: series is nil", pkg, accel.ErrDomain)

// Accelerator applies the iterated Aitken rhombus. It is immutable after New.
type Accelerator[T accel.Float] struct {
	s    series.Series[T]
	opts Options
}

// New returns an Aitken rhombus accelerator over s.
func New[T accel.Float](s series.Series[T], opts ...Option) *Accelerator[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Accelerator[T]{s: s, opts: o}
}

// Accelerate returns T_order(n).
//
// Errors: ErrNilSeries; accel.ErrDomain for invalid (n, order) or n < order;
// accel.ErrInstability if the final cell is not finite.
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
	if n < order {
		return 0, accel.Domainf(pkg, "n=%d must be at least order=%d", n, order)
	}

	r := rhombus[T]{
		tol:  accel.NewTolerance[T](),
		diag: accel.Diagnostics{Logger: a.opts.Logger, Observer: a.opts.Observer},
	}
	// level holds T_j(i) for i = lo … lo+len−1, lo = n−order+j.
	lo := n - order + 1
	level := make([]T, 2*order-1)
	ai := a.s.Term(lo)
	for x := range level {
		i := lo + x
		next := a.s.Term(i + 1)
		level[x] = r.first(i, a.s.PartialSum(i), ai, next, a.opts.Alternating)
		ai = next
	}
	for j := 2; j <= order; j++ {
		// In place: cell x of level j reads cells x, x+1, x+2 of level j−1.
		for x := 0; x < len(level)-2; x++ {
			level[x] = r.next(j, lo+x+1, level[x], level[x+1], level[x+2])
		}
		level = level[:len(level)-2]
		lo++
	}

	v := level[0]
	if !accel.IsFinite(v) {
		return 0, accel.Instabilityf(pkg, "T_%d(%d) = %v", order, n, float64(v))
	}

	return v, nil
}

// rhombus evaluates single cells and repairs degenerate ones.
type rhombus[T accel.Float] struct {
	tol  accel.Tolerance[T]
	diag accel.Diagnostics
}

// first returns T_1(i) from S(i), a(i) and a(i+1).
func (r rhombus[T]) first(i int, s, ai, an T, alternating bool) T {
	var den, v T
	if alternating {
		den = ai - an
		v = accel.FMA(ai*an, 1/den, s)
		if r.tol.Negligible(den, ai, an) || !accel.IsFinite(v) {
			return r.propagate(1, i, v, s)
		}

		return v
	}
	tmp := -an * an
	den = accel.FMA(ai, ai, tmp) - accel.FMA(an, an, tmp)
	v = accel.FMA(ai*an, (ai+an)/den, s)
	if r.tol.Negligible(den, ai*ai, an*an) || !accel.IsFinite(v) {
		return r.propagate(1, i, v, s)
	}

	return v
}

// next returns T_j(i) from b, a, c = T_{j−1}(i−1), T_{j−1}(i), T_{j−1}(i+1).
func (r rhombus[T]) next(j, i int, b, a, c T) T {
	den := 2*a - b - c
	v := accel.FMA(accel.FMA(a, c+b-a, -b*c), 1/den, a)
	if r.tol.Negligible(den, 2*a, b+c) || !accel.IsFinite(v) {
		return r.propagate(j, i, v, a)
	}

	return v
}

func (r rhombus[T]) propagate(level, i int, raw, keep T) T {
	if r.diag.Enabled() {
		r.diag.Report(accel.Correction{
			Method: pkg,
			Column: level,
			Index:  i,
			Kind:   accel.Propagated,
			Raw:    float64(raw),
			Value:  float64(keep),
		})
	}

	return keep
}
