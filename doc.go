// Package shanks accelerates the convergence of infinite series.
//
// Given a series through its terms a(k) and partial sums S(n) = a(0) + … + a(n),
// an accelerator returns an estimate of the limit that is far more accurate
// than S(n) itself, using only a handful of further partial sums.
//
// Everything is organized in subpackages:
//
//	accel/    — the Accelerator interface, shared validation, tolerances,
//	            sentinel errors, correction diagnostics and concurrent Sweep
//	series/   — the Series interface, adapters, combinatorics and Memoize
//	epsilon/  — Wynn's epsilon algorithm (rolling or full table, canonical or
//	            diagonal window) and the compact QUADPACK-style extrapolator
//	aitken/   — iterated Aitken Δ² (Shanks) with an alternating-series form
//	rho/      — Wynn's rho algorithm with classic, generalized and γ-ρ numerators
//	theta/    — Brezinski's theta algorithm
//	levin/    — Levin, Weniger S and Drummond D transformations (u, t, v and
//	            shifted remainders)
//	changwynn/ — the Chang–Wynn generalization of the epsilon algorithm
//	fordsidi/ — the Ford–Sidi algorithm for generalized Richardson extrapolation
//	registry/ — YAML/TOML configuration and construction of any accelerator
//
// Quick start:
//
//	s := series.FromTerms(func(n int) float64 { return series.MinusOnePow(n) / float64(n+1) })
//	v, err := epsilon.New(s).Accelerate(4, 4) // ≈ ln 2 to 9 digits from 9 partial sums
//
// Failures are reported through accel.ErrDomain (invalid arguments, before
// any work) and accel.ErrInstability (a non-finite answer the stability
// corrector could not repair). Every accelerator is immutable after
// construction and safe for concurrent use when its series is.
package shanks
