package series

import (
	"errors"

	"github.com/katalvlaran/shanks/accel"
)

// ErrEmptySlice indicates that Slice was given no elements.
var ErrEmptySlice = errors.New("series: slice must hold at least one term")

// Series is a sequence source observable through its terms and partial sums.
type Series[T accel.Float] interface {
	Term(n int) T
	PartialSum(n int) T
}

// Func is a Series built from two closures.
type Func[T accel.Float] struct {
	TermFunc       func(n int) T
	PartialSumFunc func(n int) T
}

// Term returns TermFunc(n).
func (f Func[T]) Term(n int) T { return f.TermFunc(n) }

// PartialSum returns PartialSumFunc(n).
func (f Func[T]) PartialSum(n int) T { return f.PartialSumFunc(n) }

// FromTerms builds a Series from a term function alone.
// PartialSum(n) accumulates term(0..n) on every call: O(n).
func FromTerms[T accel.Float](term func(n int) T) Series[T] {
	return Func[T]{
		TermFunc: term,
		PartialSumFunc: func(n int) T {
			var sum T
			for i := 0; i <= n; i++ {
				sum += term(i)
			}

			return sum
		},
	}
}

// FromPartialSums builds a Series from a partial-sum function alone.
// Term(n) = S(n) - S(n-1), with Term(0) = S(0).
func FromPartialSums[T accel.Float](partial func(n int) T) Series[T] {
	return Func[T]{
		TermFunc: func(n int) T {
			if n == 0 {
				return partial(0)
			}

			return partial(n) - partial(n-1)
		},
		PartialSumFunc: partial,
	}
}

// Slice is a finite series held in memory. Indices past the end behave as
// zero terms, so the partial sums stay at the total.
type Slice[T accel.Float] struct {
	terms []T
	sums  []T
}

// NewSlice copies terms and precomputes their running sums.
// Returns ErrEmptySlice if terms is empty.
func NewSlice[T accel.Float](terms []T) (*Slice[T], error) {
	if len(terms) == 0 {
		return nil, ErrEmptySlice
	}
	s := &Slice[T]{
		terms: append([]T(nil), terms...),
		sums:  make([]T, len(terms)),
	}
	var run T
	for i, t := range s.terms {
		run += t
		s.sums[i] = run
	}

	return s, nil
}

// Len returns the number of stored terms.
func (s *Slice[T]) Len() int { return len(s.terms) }

// Term returns the n-th stored term, or zero past the end.
func (s *Slice[T]) Term(n int) T {
	if n < 0 || n >= len(s.terms) {
		return 0
	}

	return s.terms[n]
}

// PartialSum returns the n-th running sum, clamped to the total past the end.
func (s *Slice[T]) PartialSum(n int) T {
	if n < 0 {
		return 0
	}
	if n >= len(s.sums) {
		return s.sums[len(s.sums)-1]
	}

	return s.sums[n]
}
