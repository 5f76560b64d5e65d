package accel

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every acceleration method.
//
// Packages never return these bare: they wrap them with their own prefix,
// e.g. fmt.Errorf("epsilon: %w: n must be positive", ErrDomain), so callers
// match with errors.Is and still see where the failure came from.
var (
	// ErrDomain indicates an argument outside the method's defined range
	// (negative index, zero terms where a difference is required, a parameter
	// that must be strictly positive, ...). Raised before any table work.
	ErrDomain = errors.New("accel: argument outside the domain of the transformation")

	// ErrInstability indicates the recurrence produced a non-finite value that
	// the stability corrector could not repair.
	ErrInstability = errors.New("accel: numerical instability (non-finite result)")
)

// Domainf wraps ErrDomain with a package tag and a formatted reason.
func Domainf(pkg, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", pkg, ErrDomain, fmt.Sprintf(format, args...))
}

// Instabilityf wraps ErrInstability with a package tag and a formatted reason.
func Instabilityf(pkg, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", pkg, ErrInstability, fmt.Sprintf(format, args...))
}
