package epsilon

import (
	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/series"
)

// Accelerator applies Wynn's epsilon algorithm to the partial sums of a series.
// It is immutable after New and safe for concurrent use when its series is.
type Accelerator[T accel.Float] struct {
	s    series.Series[T]
	opts Options
}

// New returns an epsilon accelerator over s configured by opts.
// It honours MemoryMode, Window, Logger and Observer; Threshold only affects
// NewCompact.
//
// Example:
//
//	acc := epsilon.New[float64](s, epsilon.WithMemoryMode(epsilon.FullTable))
//	v, err := acc.Accelerate(5, 2)
func New[T accel.Float](s series.Series[T], opts ...Option) *Accelerator[T] {
	return &Accelerator[T]{s: s, opts: buildOptions(opts)}
}

// Options returns a copy of the configuration.
func (a *Accelerator[T]) Options() Options { return a.opts }

// Accelerate returns the epsilon-extrapolated limit of order `order` anchored
// at n (see the Window policies).
//
// Steps:
//  1. Validate (n, order); order == 0 returns PartialSum(n) unchanged.
//  2. Seed column 0 with the window's partial sums.
//  3. Run the recurrence engine for the window's step count; every new cell
//     passes through the stability corrector.
//  4. Select the terminal cell by step parity and check it is finite.
//
// Errors: ErrNilSeries, accel.ErrDomain, accel.ErrInstability (all wrapped).
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

	base, m, steps := layout(a.opts.Window, n, order)
	var g grid[T]
	if a.opts.MemoryMode == FullTable {
		g = newTriangle[T](m, steps)
	} else {
		g = newRing[T](m)
	}
	a.fill(g, base, m, steps)
	col, j := terminal(steps)

	return finalize(g.at(col, j), col, base+j)
}

// Table builds the full triangle for (n, order) under the configured window,
// regardless of MemoryMode. For order == 0 it holds the single seed S(n).
func (a *Accelerator[T]) Table(n, order int) (*Table[T], error) {
	if a.s == nil {
		return nil, ErrNilSeries
	}
	if err := accel.ValidateArgs(pkg, n, order); err != nil {
		return nil, err
	}
	base, m, steps := layout(a.opts.Window, n, order)
	tri := newTriangle[T](m, steps)
	a.fill(tri, base, m, steps)

	return &Table[T]{base: base, m: m, steps: steps, cells: tri}, nil
}

func (a *Accelerator[T]) fill(g grid[T], base, m, steps int) {
	for j := 0; j <= m; j++ {
		g.put(0, j, a.s.PartialSum(base+j))
	}
	e := engine[T]{
		g:    g,
		tol:  accel.NewTolerance[T](),
		diag: a.opts.diagnostics(),
		base: base,
	}
	e.run(m, steps)
}
