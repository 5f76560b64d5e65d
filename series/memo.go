package series

import (
	"errors"
	"sync/atomic"

	ristretto "github.com/dgraph-io/ristretto/v2"

	"github.com/katalvlaran/shanks/accel"
)

// ErrBadCapacity indicates a non-positive cache capacity.
var ErrBadCapacity = errors.New("series: memo capacity must be positive")

// Memo caches the terms and partial sums of an expensive series.
//
// Terms live under key 2n and partial sums under key 2n+1 of one ristretto
// cache, each entry costing 1. The cache is admission-controlled: a value may
// be dropped or evicted at any time, in which case it is simply recomputed.
// The cache belongs to this Memo instance, never to the process.
type Memo[T accel.Float] struct {
	src    Series[T]
	cache  *ristretto.Cache[int, T]
	misses atomic.Int64
}

// Memoize wraps s with a cache holding up to capacity values.
func Memoize[T accel.Float](s Series[T], capacity int64) (*Memo[T], error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	cache, err := ristretto.NewCache(&ristretto.Config[int, T]{
		NumCounters:        10 * capacity, // ~10x the items for admission frequency
		MaxCost:            capacity,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Memo[T]{src: s, cache: cache}, nil
}

// Term returns the cached or freshly computed n-th term.
func (m *Memo[T]) Term(n int) T {
	return m.lookup(2*n, func() T { return m.src.Term(n) })
}

// PartialSum returns the cached or freshly computed n-th partial sum.
func (m *Memo[T]) PartialSum(n int) T {
	return m.lookup(2*n+1, func() T { return m.src.PartialSum(n) })
}

// Misses returns how many values were computed by the wrapped series.
func (m *Memo[T]) Misses() int64 { return m.misses.Load() }

// Wait blocks until pending writes are visible to readers.
func (m *Memo[T]) Wait() { m.cache.Wait() }

// Close releases the cache goroutines. The Memo must not be used afterwards.
func (m *Memo[T]) Close() { m.cache.Close() }

func (m *Memo[T]) lookup(key int, compute func() T) T {
	if v, ok := m.cache.Get(key); ok {
		return v
	}
	m.misses.Add(1)
	v := compute()
	m.cache.Set(key, v, 1)

	return v
}
