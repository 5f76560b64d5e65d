package fordsidi

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/levin"
	"github.com/katalvlaran/shanks/series"
)

// Accelerator applies the Ford–Sidi algorithm. It is immutable after New.
type Accelerator[F accel.Float] struct {
	s     series.Series[F]
	basis Basis[F]
	opts  Options
}

// New returns an accelerator over s with the Levin-type basis selected by
// the options.
func New[F accel.Float](s series.Series[F], opts ...Option) *Accelerator[F] {
	a := &Accelerator[F]{s: s, opts: buildOptions(opts)}
	r, beta := a.opts.Remainder, a.opts.Beta
	a.basis = func(k, l int) F {
		return levin.Omega(r, beta, s, l) / F(math.Pow(beta+float64(l), float64(k-1)))
	}

	return a
}

// NewWithBasis returns an accelerator over s with the basis g. Remainder and
// Beta are ignored.
func NewWithBasis[F accel.Float](s series.Series[F], g Basis[F], opts ...Option) *Accelerator[F] {
	return &Accelerator[F]{s: s, basis: g, opts: buildOptions(opts)}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Options returns a copy of the configuration.
func (a *Accelerator[F]) Options() Options { return a.opts }

// Accelerate returns A_order^{(n)}, or the answer at the nearest earlier
// anchor whose window is not degenerate.
//
// Errors: ErrNilSeries, ErrNilBasis; accel.ErrDomain for invalid options or
// (n, order); accel.ErrInstability when no anchor down to 1 gives a finite
// answer (only n itself with shifting off).
func (a *Accelerator[F]) Accelerate(n, order int) (F, error) {
	if a.s == nil {
		return 0, ErrNilSeries
	}
	if a.basis == nil {
		return 0, ErrNilBasis
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

	diag := accel.Diagnostics{Logger: a.opts.Logger, Observer: a.opts.Observer}
	for anchor := n; ; anchor-- {
		v, err := a.solve(anchor, order)
		if err == nil || !a.opts.Shift || anchor == 1 || !errors.Is(err, accel.ErrInstability) {
			return v, err
		}
		if diag.Enabled() {
			diag.Report(accel.Correction{
				Method: pkg, Column: order, Index: anchor - 1, Kind: accel.Shifted,
				Raw: float64(v),
			})
		}
	}
}

// solve runs the recursion on the window S(n) … S(n+p).
func (a *Accelerator[F]) solve(n, p int) (F, error) {
	w := p + 1
	g1 := make([]F, w)
	for j := range g1 {
		g := a.basis(1, n+j)
		if g == 0 || !accel.IsFinite(g) {
			if l := a.opts.Logger; l != nil {
				l.Debug("ford-sidi basis rejected",
					zap.Int("k", 1),
					zap.Int("l", n+j),
					zap.Float64("value", float64(g)),
				)
			}

			return F(math.NaN()), accel.Instabilityf(pkg, "g_1(%d) = %v", n+j, float64(g))
		}
		g1[j] = g
	}

	num := make([]F, w) // ψ(S)
	den := make([]F, w) // ψ(1)
	for j := range num {
		num[j] = a.s.PartialSum(n+j) / g1[j]
		den[j] = 1 / g1[j]
	}
	// aux[k−2] holds ψ(g_k) for k = 2 … p+1.
	aux := make([][]F, p)
	for i := range aux {
		row := make([]F, w)
		for j := range row {
			row[j] = a.basis(i+2, n+j) / g1[j]
		}
		aux[i] = row
	}

	for q := 1; q <= p; q++ {
		// Cell j reads j and j+1 of the previous step, so ascending j
		// updates in place. aux[q−1] is the divisor and stays untouched.
		gq := aux[q-1]
		for j := 0; j < w-q; j++ {
			d := gq[j+1] - gq[j]
			num[j] = (num[j+1] - num[j]) / d
			den[j] = (den[j+1] - den[j]) / d
			for _, row := range aux[q:] {
				row[j] = (row[j+1] - row[j]) / d
			}
		}
	}

	v := num[0] / den[0]
	if !accel.IsFinite(v) {
		return v, accel.Instabilityf(pkg, "A_%d^(%d) = %v", p, n, float64(v))
	}

	return v, nil
}
