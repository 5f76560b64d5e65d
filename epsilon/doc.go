// Package epsilon implements Wynn's epsilon algorithm: the reciprocal-difference
// extrapolation table that underlies Shanks' transformation.
//
// Table (column k, diagonal position j):
//
//	ε_{-1}^{(j)} = 0
//	ε_0^{(j)}    = S(j)
//	ε_{k+1}^{(j)} = ε_{k-1}^{(j+1)} + 1 / (ε_k^{(j+1)} − ε_k^{(j)})
//
// Only even columns carry extrapolated values (ε_{2k} = e_k, the Shanks
// transform); odd columns are auxiliary. Accelerate therefore always runs an
// even number of reduction steps, 2·order.
//
// Components:
//
//   - Extrapolation table: a ring of four rows (Rolling, default) or the
//     whole triangle (FullTable). Both give bit-identical answers; Table
//     returns the triangle for inspection.
//   - Recurrence engine: fills one column at a time, invoking the stability
//     corrector on every new cell as it is produced.
//   - Stability corrector: when the controlling difference vanishes relative
//     to its operands (|d| <= 50·eps·max(|a|,|b|)) or the raw value is not
//     finite, the cell is recomputed from Wynn's cross rule
//
//     (N−C)⁻¹ + (S−C)⁻¹ = (W−C)⁻¹ + (E−C)⁻¹
//
//     with a large-centre form for huge C. Failing that, an infinite auxiliary
//     cell is clamped to the overflow sentinel and anything else propagates
//     the previous same-parity value.
//   - Result selector: picks the terminal cell from the parity of the number
//     of reduction steps and performs the final finiteness check.
//
// Window policies:
//
//   - Canonical: seeds S(n−1) … S(n−1+2·order); the answer is ε_{2·order}^{(n−1)}.
//     At order 1 this is exactly Aitken's Δ² applied at n.
//   - Diagonal: seeds S(n−1) … S(n−1+N), N = n+2·order, and reduces to the
//     tip; the answer is ε_{N−1}^{(n)} for odd N and ε_N^{(n−1)} for even N.
//     At n = 1 this is the whole table over S(0) … S(1+2·order).
//
// The package also ships the compact streaming variant known from QUADPACK
// (Extrapolator, Compact): a single-array table of bounded length that yields
// an estimate and an error bound after each new partial sum, with a threshold
// that truncates the table on irregular behaviour.
//
// Complexity:
//
//	Accelerate: Time O(m²) with m = number of seeds, Space O(m) Rolling / O(m²) FullTable.
//	Push:       Time O(limit), Space O(limit).
package epsilon
