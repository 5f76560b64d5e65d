// Package series defines the sequence source consumed by every accelerator,
// together with small adapters and combinatorial helpers.
//
// A Series exposes two primitives:
//
//	Term(n)       – the n-th element a(n), n >= 0.
//	PartialSum(n) – a(0) + ... + a(n).
//
// Accelerators always call PartialSum directly and never re-sum Term, so a
// series with a closed-form partial sum is never penalised. Adapters:
//
//   - Func            – build a series from two closures.
//   - FromTerms       – only a term function; partial sums are accumulated.
//   - FromPartialSums – only a partial-sum function; terms are differences.
//   - Slice           – a finite prefix held in memory.
//   - Memoize         – wrap any series with a concurrent ristretto cache.
//
// Helpers Factorial, Binomial, Pochhammer and MinusOnePow cover the
// combinatorial weights used by the Levin family.
//
// Every adapter except Memo is a pure value and safe for concurrent use.
// Memo is safe for concurrent use too; its cache is owned by the instance and
// released with Close.
package series
