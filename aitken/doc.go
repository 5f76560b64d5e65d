// Package aitken implements the generalized Shanks transformation through the
// iterated Aitken Δ² process, organised as a rhombus of shrinking levels.
//
// Level 1 applies Aitken's Δ² to each triple of partial sums, written in terms
// of the series terms a(i):
//
//	T_1(i) = S(i) + a(i)·a(i+1)·(a(i)+a(i+1)) / (a(i)² − a(i+1)²)
//
// The square difference is formed with two fused multiply-adds so that the
// rounding error of a(i+1)² cancels. For alternating series the reduced form
//
//	T_1(i) = S(i) + a(i)·a(i+1) / (a(i) − a(i+1))
//
// avoids the near-cancellation of a(i)+a(i+1); select it with WithAlternating.
//
// Level j combines the neighbours b, a, c = T_{j−1}(i−1), T_{j−1}(i), T_{j−1}(i+1):
//
//	T_j(i) = a + (a·(b+c−a) − b·c) / (2a − b − c)
//
// evaluated as fma(fma(a, b+c−a, −b·c), 1/(2a−b−c), a). The answer of order k
// anchored at n is T_k(n), which needs the terms a(n−k+1) … a(n+k) and so n >= k.
//
// A cell whose denominator vanishes relative to its operands, or whose value
// is not finite, takes the value of its centre a from the level below.
//
// Complexity: Time O(order²), Space O(order).
package aitken
