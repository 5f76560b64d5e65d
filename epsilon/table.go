package epsilon

import (
	"fmt"

	"github.com/katalvlaran/shanks/accel"
)

// Table is a fully materialised epsilon triangle.
//
// Cells are addressed the way the literature writes them: At(k, j) is
// ε_k^{(j)} with j the absolute partial-sum index, so column 0 holds
// S(Base()) … S(Base()+Seeds()−1) and column k holds Seeds()−k cells.
type Table[T accel.Float] struct {
	base  int
	m     int
	steps int
	cells *triangle[T]
}

// Base returns the index of the first seeded partial sum.
func (t *Table[T]) Base() int { return t.base }

// Seeds returns the number of seeded partial sums.
func (t *Table[T]) Seeds() int { return t.m + 1 }

// Depth returns the deepest computed column.
func (t *Table[T]) Depth() int { return t.steps }

// At returns ε_col^{(j)}. Column −1 is the zero column.
// Returns ErrCellRange outside −1 <= col <= Depth(), Base() <= j <= Base()+m−max(col,0).
func (t *Table[T]) At(col, j int) (T, error) {
	if col < -1 || col > t.steps {
		return 0, fmt.Errorf("%w: column %d not in [-1,%d]", ErrCellRange, col, t.steps)
	}
	last := t.base + t.m - max(col, 0)
	if j < t.base || j > last {
		return 0, fmt.Errorf("%w: index %d not in [%d,%d] for column %d", ErrCellRange, j, t.base, last, col)
	}

	return t.cells.at(col, j-t.base), nil
}

// Result returns the cell the result selector picks, with the same
// finiteness check as Accelerate.
func (t *Table[T]) Result() (T, error) {
	col, j := terminal(t.steps)

	return finalize(t.cells.at(col, j), col, t.base+j)
}
