package accel

import "math"

// Float is the scalar constraint accepted by every accelerator.
type Float interface {
	~float32 | ~float64
}

// Accelerator transforms the partial sums of a series into a faster
// converging estimate of its limit.
//
// n selects the partial sum the transformation is anchored at and order the
// transformation depth. Implementations return PartialSum(n) for order == 0.
type Accelerator[T Float] interface {
	Accelerate(n, order int) (T, error)
}

// Func adapts an ordinary function to the Accelerator interface.
type Func[T Float] func(n, order int) (T, error)

// Accelerate calls f(n, order).
func (f Func[T]) Accelerate(n, order int) (T, error) { return f(n, order) }

// MaxArg bounds n and order so that every window size derived from them
// (n+2·order+2, 2·order+1) fits in an int.
const MaxArg = math.MaxInt >> 3

// ValidateArgs applies the shared precondition policy.
//
//   - n < 0 or order < 0 → ErrDomain.
//   - order == 0         → ok (identity transform, n == 0 allowed).
//   - n == 0, order > 0  → ErrDomain (at least one real difference is needed).
//   - n or order above MaxArg → ErrDomain (the widest window, n+2·order+2
//     partial sums, must stay far from int overflow).
//
// pkg prefixes the wrapped error.
func ValidateArgs(pkg string, n, order int) error {
	if n < 0 {
		return Domainf(pkg, "negative index n=%d", n)
	}
	if order < 0 {
		return Domainf(pkg, "negative order %d", order)
	}
	if order > 0 && n == 0 {
		return Domainf(pkg, "zero index n with order %d", order)
	}
	if n > MaxArg || order > MaxArg {
		return Domainf(pkg, "window n=%d order=%d overflows int", n, order)
	}

	return nil
}
