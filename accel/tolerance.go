// SPDX-License-Identifier: MIT
// Package: accel
//
// Purpose:
//   - Provide the per-call numeric policy (machine epsilon, relative tolerance,
//     overflow sentinel) for any Float type, plus the scalar micro-helpers the
//     table engines share (finite checks, fused multiply-add, near-equality).
//
// Determinism & Performance:
//   - All helpers are pure and allocation-free.
//   - FMA is fused in float64; float32 results are rounded a second time.

package accel

import (
	"math"
	"reflect"
)

// RelativeFactor multiplies machine epsilon to obtain the relative tolerance.
const RelativeFactor = 50

// Typed copies of the math limits: a constant conversion to a T whose type
// set includes float32 would not compile for MaxFloat64.
var (
	maxFloat32 float32 = math.MaxFloat32
	maxFloat64 float64 = math.MaxFloat64
)

// Tolerance is the numeric policy of one transformation call.
type Tolerance[T Float] struct {
	Eps      T // machine epsilon of T
	Rel      T // RelativeFactor * Eps
	Overflow T // largest finite magnitude of T
}

// NewTolerance builds the policy for T.
// Implementation:
//   - Stage 1: detect the underlying kind of T (float32 vs float64).
//   - Stage 2: fill epsilon / overflow from the math package constants.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewTolerance[T Float]() Tolerance[T] {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		eps := T(math.Nextafter32(1, 2) - 1)

		return Tolerance[T]{Eps: eps, Rel: RelativeFactor * eps, Overflow: T(maxFloat32)}
	}
	eps := T(math.Nextafter(1, 2) - 1)

	return Tolerance[T]{Eps: eps, Rel: RelativeFactor * eps, Overflow: T(maxFloat64)}
}

// Negligible reports whether the difference d between a and b is numerically
// indistinguishable from zero: |d| <= Rel * max(|a|, |b|).
// A non-finite difference is never negligible.
func (t Tolerance[T]) Negligible(d, a, b T) bool {
	if !IsFinite(d) {
		return false
	}

	return Abs(d) <= t.Rel*max(Abs(a), Abs(b))
}

// Clamp maps ±Inf to ±Overflow and leaves finite values untouched. NaN is
// returned as is.
func (t Tolerance[T]) Clamp(x T) T {
	switch {
	case math.IsInf(float64(x), 1):
		return t.Overflow
	case math.IsInf(float64(x), -1):
		return -t.Overflow
	}

	return x
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// FMA returns a*b + c fused in float64: a single rounding for float64, a
// second rounding to T for float32.
func FMA[T Float](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}
