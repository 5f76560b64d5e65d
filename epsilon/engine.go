package epsilon

import (
	"math"

	"github.com/katalvlaran/shanks/accel"
)

// engine grows an epsilon table column by column.
type engine[T accel.Float] struct {
	g    grid[T]
	tol  accel.Tolerance[T]
	diag accel.Diagnostics
	base int // absolute index of relative position 0, for reporting
}

// run computes columns 1 … steps over m+1 seeded cells in column 0.
// Column k+1 has m−k cells; every cell passes through the corrector check
// before it is stored, so no later column ever reads an unchecked value.
func (e *engine[T]) run(m, steps int) {
	for k := 0; k < steps; k++ {
		col := k + 1
		for j := 0; j+col <= m; j++ {
			a, b := e.g.at(k, j), e.g.at(k, j+1)
			d := b - a
			raw := e.g.at(k-1, j+1) + 1/d
			v := raw
			if e.tol.Negligible(d, a, b) || !accel.IsFinite(raw) {
				v = e.correct(col, j, raw)
			}
			e.g.put(col, j, v)
		}
	}
}

// correct repairs ε_col^{(j)} whose controlling difference vanished or whose
// direct value is not finite.
//
// Order of attempts:
//  1. Cross rule from C = ε_{col−2}^{(j+1)}, N = ε_{col−2}^{(j)},
//     S = ε_{col−2}^{(j+2)} and W = ε_{col−4}^{(j+2)} (col >= 2; for col == 2
//     W is ε_{−2} = ∞ and its term vanishes).
//  2. The raw value, if finite.
//  3. Odd column, raw = ±Inf: clamp to ±overflow.
//  4. Propagate N, the previous value of the same parity at j.
func (e *engine[T]) correct(col, j int, raw T) T {
	n := e.g.at(col-2, j)
	if col >= 2 {
		c, s := e.g.at(col-2, j+1), e.g.at(col-2, j+2)
		var w T
		hasW := col >= 3
		if hasW {
			w = e.g.at(col-4, j+2)
		}
		if v := crossRule(c, n, s, w, hasW, e.tol); accel.IsFinite(v) {
			e.report(col, j, accel.CrossRule, raw, v)

			return v
		}
	}
	if accel.IsFinite(raw) {
		return raw
	}
	if col&1 == 1 && math.IsInf(float64(raw), 0) {
		v := e.tol.Clamp(raw)
		e.report(col, j, accel.Clamped, raw, v)

		return v
	}
	e.report(col, j, accel.Propagated, raw, n)

	return n
}

func (e *engine[T]) report(col, j int, kind accel.CorrectionKind, raw, v T) {
	if !e.diag.Enabled() {
		return
	}
	e.diag.Report(accel.Correction{
		Method: pkg,
		Column: col,
		Index:  e.base + j,
		Kind:   kind,
		Raw:    float64(raw),
		Value:  float64(v),
	})
}

// crossRule solves Wynn's identity
//
//	(N−C)⁻¹ + (S−C)⁻¹ = (W−C)⁻¹ + (E−C)⁻¹
//
// for E. Ordinary form: E = C + 1/((N−C)⁻¹ + (S−C)⁻¹ − (W−C)⁻¹).
// When |C| exceeds 1/rel (or is infinite) the equivalent large-centre form
//
//	r = N/(1−N/C) + S/(1−S/C) − W/(1−W/C),   E = r / (1 + r/C)
//
// keeps C out of the differences. Without W (W = ∞) its term becomes +C.
func crossRule[T accel.Float](c, n, s, w T, hasW bool, tol accel.Tolerance[T]) T {
	if accel.IsFinite(c) && accel.Abs(c)*tol.Rel <= 1 {
		sum := 1/(n-c) + 1/(s-c)
		if hasW {
			sum -= 1 / (w - c)
		}

		return c + 1/sum
	}
	r := n/(1-n/c) + s/(1-s/c)
	if hasW {
		r -= w / (1 - w/c)
	} else {
		r += c
	}

	return r / (1 + r/c)
}
