package epsilon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/series"
)

// Estimate is the best extrapolated value seen so far and its error bound.
type Estimate[T accel.Float] struct {
	Value  T
	AbsErr T
}

// Extrapolator is the compact, streaming epsilon table.
//
// Only the latest ascending diagonal is stored, in one array of at most limit
// entries (limit odd). After each Push the diagonal is advanced in place, the
// best candidate (smallest |Δ| sum) becomes Value, and once three table
// steps have produced results AbsErr is the spread of the last three. Before
// that AbsErr is the overflow sentinel unless the table has converged. The table is cut back
// when two neighbours agree to machine precision or when |ss·e1| <= threshold,
// ss being the reciprocal sum of the cross rule.
//
// An Extrapolator is not safe for concurrent use.
type Extrapolator[T accel.Float] struct {
	tab       []T
	n         int // filled entries
	limit     int
	threshold T
	tol       accel.Tolerance[T]
	nres      int // table steps taken, i.e. pushes with n >= 3
	last3     [3]T
	diag      accel.Diagnostics
}

// NewExtrapolator returns an empty extrapolator holding at most limit entries.
// Returns ErrBadLimit if limit is even or below 3, ErrBadThreshold if
// threshold is not positive and finite.
func NewExtrapolator[T accel.Float](limit int, threshold float64) (*Extrapolator[T], error) {
	if limit < 3 || limit&1 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLimit, limit)
	}
	if !(threshold > 0) || math.IsInf(threshold, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, threshold)
	}

	return &Extrapolator[T]{
		tab:       make([]T, limit+2),
		limit:     limit,
		threshold: T(threshold),
		tol:       accel.NewTolerance[T](),
	}, nil
}

// Len returns the number of entries currently held in the diagonal.
func (x *Extrapolator[T]) Len() int { return x.n }

// Push appends the next partial sum and returns the updated estimate.
func (x *Extrapolator[T]) Push(s T) Estimate[T] {
	x.tab[x.n] = s
	x.n++

	return x.advance()
}

// advance is one step of the compact recurrence (QUADPACK qelg layout).
//
// Implementation:
//   - Stage 1: park the new sum at n+1 and walk the diagonal backwards in
//     pairs, computing each even-column entry through the cross rule.
//   - Stage 2: stop early on convergence (all of e0, e1, e2 agree) or on
//     irregular behaviour, shrinking the diagonal to 2i−1 entries.
//   - Stage 3: shift the surviving even-column entries into place and
//     compact the array to its new length.
//   - Stage 4: derive the error bound from the last three results.
func (x *Extrapolator[T]) advance() Estimate[T] {
	eps, oflow := x.tol.Eps, x.tol.Overflow
	result := x.tab[x.n-1]
	abserr := oflow
	if x.n < 3 {
		return x.bound(result, abserr)
	}
	x.nres++

	tab := x.tab
	num := x.n
	newelm := (x.n - 1) / 2
	tab[x.n+1] = tab[x.n-1]
	tab[x.n-1] = oflow
	k1 := x.n - 1
	converged := false
	for i := 1; i <= newelm; i++ {
		res := tab[k1+2]
		e0, e1, e2 := tab[k1-2], tab[k1-1], res
		delta2, delta3 := e2-e1, e1-e0
		err2, err3 := accel.Abs(delta2), accel.Abs(delta3)
		tol2 := max(accel.Abs(e2), accel.Abs(e1)) * eps
		tol3 := max(accel.Abs(e1), accel.Abs(e0)) * eps
		e3 := tab[k1]
		tab[k1] = e1
		if err2 <= tol2 && err3 <= tol3 {
			// e0, e1 and e2 agree to machine accuracy: converged. The
			// diagonal is cut here exactly as for irregular behaviour.
			result, abserr, converged = res, err2+err3, true
			x.truncate(i, e1, result)

			break
		}

		delta1 := e1 - e3
		err1 := accel.Abs(delta1)
		tol1 := max(accel.Abs(e1), accel.Abs(e3)) * eps
		if err1 <= tol1 || err2 <= tol2 || err3 <= tol3 {
			x.truncate(i, e1, result)

			break
		}
		ss := 1/delta1 + 1/delta2 - 1/delta3
		if accel.Abs(ss*e1) <= x.threshold {
			x.truncate(i, e1, result)

			break
		}
		res = e1 + 1/ss
		tab[k1] = res
		k1 -= 2
		if e := err2 + accel.Abs(res-e2) + err3; e <= abserr {
			abserr = e
			result = res
		}
	}

	if x.n == x.limit {
		x.n = 2*(x.limit/2) - 1
	}
	ib := 0
	if num&1 == 0 {
		ib = 1
	}
	for i := 0; i <= newelm; i++ {
		tab[ib] = tab[ib+2]
		ib += 2
	}
	if num != x.n {
		copy(tab[:x.n], tab[num-x.n:num])
	}

	spread := oflow
	if x.nres < 4 {
		x.last3[x.nres-1] = result
	} else {
		spread = accel.Abs(result-x.last3[2]) + accel.Abs(result-x.last3[1]) + accel.Abs(result-x.last3[0])
		x.last3[0], x.last3[1], x.last3[2] = x.last3[1], x.last3[2], result
	}
	if !converged {
		abserr = spread
	}

	return x.bound(result, abserr)
}

// truncate cuts the diagonal to 2i−1 entries, the walk having stopped at
// column 2i.
func (x *Extrapolator[T]) truncate(i int, e1, result T) {
	x.n = 2*i - 1
	if x.diag.Enabled() {
		x.diag.Report(accel.Correction{
			Method: pkg + "-compact", Column: 2 * i, Index: x.nres, Kind: accel.Truncated,
			Raw: float64(e1), Value: float64(result),
		})
	}
}

func (x *Extrapolator[T]) bound(result, abserr T) Estimate[T] {
	return Estimate[T]{Value: result, AbsErr: max(abserr, 5*x.tol.Eps*accel.Abs(result))}
}

// Compact accelerates a series by streaming its partial sums through an
// Extrapolator of limit 2·order+1.
type Compact[T accel.Float] struct {
	s    series.Series[T]
	opts Options
}

// NewCompact returns a compact epsilon accelerator over s.
// It honours Threshold, Logger and Observer (every table truncation is
// reported as accel.Truncated); MemoryMode and Window do not apply.
func NewCompact[T accel.Float](s series.Series[T], opts ...Option) *Compact[T] {
	return &Compact[T]{s: s, opts: buildOptions(opts)}
}

// Accelerate pushes S(0) … S(n+2·order) and returns the value of the estimate
// with the smallest error bound (the latest one on ties).
func (c *Compact[T]) Accelerate(n, order int) (T, error) {
	est, err := c.Extrapolate(n, order)

	return est.Value, err
}

// Extrapolate is Accelerate with the error bound.
func (c *Compact[T]) Extrapolate(n, order int) (Estimate[T], error) {
	if c.s == nil {
		return Estimate[T]{}, ErrNilSeries
	}
	if err := accel.ValidateArgs(pkg, n, order); err != nil {
		return Estimate[T]{}, err
	}
	if order == 0 {
		return Estimate[T]{Value: c.s.PartialSum(n)}, nil
	}

	x, err := NewExtrapolator[T](2*order+1, c.opts.Threshold)
	if err != nil {
		return Estimate[T]{}, err
	}
	x.diag = c.opts.diagnostics()
	var best Estimate[T]
	for i := 0; i <= n+2*order; i++ {
		est := x.Push(c.s.PartialSum(i))
		if i == 0 || est.AbsErr <= best.AbsErr {
			best = est
		}
	}
	if !accel.IsFinite(best.Value) {
		return Estimate[T]{}, accel.Instabilityf(pkg, "compact estimate %v", float64(best.Value))
	}

	return best, nil
}
