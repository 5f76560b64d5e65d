package epsilon

import "github.com/katalvlaran/shanks/accel"

// layout maps (n, order) under window w onto the seeded range
// S(base) … S(base+m) and the number of reduction steps.
// Callers have validated n and order.
func layout(w Window, n, order int) (base, m, steps int) {
	switch {
	case order == 0:
		return n, 0, 0
	case w == Diagonal:
		m = n + 2*order

		return n - 1, m, m
	default:
		return n - 1, 2 * order, 2 * order
	}
}

// terminal returns the column and relative position holding the answer after
// steps reductions. An odd step count ends on an auxiliary column, so the
// answer is the last entry of the even column before it.
func terminal(steps int) (col, j int) {
	if steps&1 == 1 {
		return steps - 1, 1
	}

	return steps, 0
}

// finalize applies the terminal finiteness check.
func finalize[T accel.Float](v T, col, j int) (T, error) {
	if !accel.IsFinite(v) {
		return 0, accel.Instabilityf(pkg, "ε_%d^(%d) = %v", col, j, float64(v))
	}

	return v, nil
}
