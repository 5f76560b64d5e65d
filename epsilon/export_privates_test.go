package epsilon

import "github.com/katalvlaran/shanks/accel"

// Test bridge: exposes the cross rule and the selector to epsilon_test.

// ExportedCrossRule exposes crossRule for float64.
func ExportedCrossRule(c, n, s, w float64, hasW bool) float64 {
	return crossRule(c, n, s, w, hasW, accel.NewTolerance[float64]())
}

// ExportedTerminal exposes terminal.
var ExportedTerminal = terminal

// ExportedLayout exposes layout.
var ExportedLayout = layout
