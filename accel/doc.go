// Package accel defines the contract shared by every series acceleration
// method in this module, plus the small numeric toolkit they all rely on.
//
// 🚀 What lives here?
//
//	• Accelerator[T] – the single interface every method implements:
//	      Accelerate(n, order int) (T, error)
//	• Float          – the scalar constraint (~float32 | ~float64).
//	• Tolerance[T]   – machine epsilon, relative tolerance (50·eps) and the
//	                   overflow sentinel, built once per call.
//	• Sentinels      – ErrDomain (bad arguments, raised before any work) and
//	                   ErrInstability (non-finite result after all corrections).
//	• Diagnostics    – optional zap logger / observer hook notified whenever a
//	                   stability correction rewrites a table cell.
//	• Sweep          – bounded concurrent evaluation of an (n, order) grid.
//
// Contract shared by all implementations:
//
//   - order == 0 is "no transformation": Accelerate returns PartialSum(n) verbatim.
//   - n < 0, order < 0, or n == 0 with order > 0 yield ErrDomain.
//   - A returned value is always finite; otherwise the error wraps ErrInstability.
//
// Accelerators are immutable after construction and own no scratch state, so
// concurrent calls are safe whenever the underlying series is.
package accel
