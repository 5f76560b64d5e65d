package levin

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/series"
)

// Accelerator applies a Levin-type transformation. It is immutable after New.
type Accelerator[F accel.Float] struct {
	s    series.Series[F]
	opts Options
}

// New returns an accelerator over s. Invalid options are reported by
// Accelerate, not here.
func New[F accel.Float](s series.Series[F], opts ...Option) *Accelerator[F] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Accelerator[F]{s: s, opts: o}
}

// Options returns a copy of the configuration.
func (a *Accelerator[F]) Options() Options { return a.opts }

// Accelerate returns T_order^(n) from S(n) … S(n+order) and the terms the
// remainder estimate reads.
func (a *Accelerator[F]) Accelerate(n, order int) (F, error) {
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

	var num, den F
	for j := 0; j <= order; j++ {
		w, err := a.remainder(n + j)
		if err != nil {
			return 0, err
		}
		r := F(series.MinusOnePow(j)*series.Binomial(order, j)*a.weight(n, j, order)) / w
		num += r * a.s.PartialSum(n+j)
		den += r
	}

	v := num / den
	if !accel.IsFinite(v) {
		return 0, accel.Instabilityf(pkg, "%s/%s at n=%d order=%d: %v",
			a.opts.Kind, a.opts.Remainder, n, order, float64(v))
	}

	return v, nil
}

// weight returns c_j for the configured kind.
func (a *Accelerator[F]) weight(n, j, k int) float64 {
	b := a.opts.Beta
	switch a.opts.Kind {
	case WenigerS:
		return series.Pochhammer(b+float64(n+j), k-1) / series.Pochhammer(b+float64(n+k), k-1)
	case Drummond:
		return 1
	default:
		return math.Pow((b+float64(n+j))/(b+float64(n+k)), float64(k-1))
	}
}

// Omega evaluates the remainder estimate r at m with shift beta (read by U
// only). The value is returned unchecked: it may be zero or non-finite.
func Omega[F accel.Float](r Remainder, beta float64, s series.Series[F], m int) F {
	switch r {
	case U:
		return F(beta+float64(m)) * s.Term(m)
	case T:
		return s.Term(m)
	case V:
		t0, t1 := s.Term(m), s.Term(m+1)

		return t0 * t1 / (t0 - t1)
	case TShifted:
		return s.Term(m + 1)
	case VShifted:
		t1, t2 := s.Term(m+1), s.Term(m+2)

		return t1 * t2 / (t1 - t2)
	default:
		return F(math.NaN())
	}
}

// remainder returns ω(m); zero or non-finite is an instability.
func (a *Accelerator[F]) remainder(m int) (F, error) {
	w := Omega(a.opts.Remainder, a.opts.Beta, a.s, m)
	if w == 0 || !accel.IsFinite(w) {
		if l := a.opts.Logger; l != nil {
			l.Debug("levin remainder rejected",
				zap.Stringer("remainder", a.opts.Remainder),
				zap.Int("m", m),
				zap.Int("reads", m+a.opts.Remainder.span()),
				zap.Float64("value", float64(w)),
			)
		}

		return 0, accel.Instabilityf(pkg, "remainder %s at m=%d is %v", a.opts.Remainder, m, float64(w))
	}

	return w, nil
}
