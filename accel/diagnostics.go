package accel

import (
	"fmt"

	"go.uber.org/zap"
)

// CorrectionKind classifies how the stability corrector repaired a cell.
type CorrectionKind int

const (
	// CrossRule – the cell was recomputed from the cross (rhombus-star) rule
	// of its neighbours instead of the direct reciprocal difference.
	CrossRule CorrectionKind = iota

	// Clamped – an auxiliary cell was ±Inf and was replaced by ±Overflow.
	Clamped

	// Propagated – nothing finite could be derived; the previous value of the
	// same parity at that position was carried forward.
	Propagated

	// Truncated – a compact table was cut back at this column (convergence or
	// irregular behaviour).
	Truncated

	// Shifted – the requested window was degenerate and the transformation
	// was anchored one partial sum earlier.
	Shifted
)

// String returns the lower-case name of the kind.
func (k CorrectionKind) String() string {
	switch k {
	case CrossRule:
		return "cross-rule"
	case Clamped:
		return "clamped"
	case Propagated:
		return "propagated"
	case Truncated:
		return "truncated"
	case Shifted:
		return "shifted"
	default:
		return fmt.Sprintf("CorrectionKind(%d)", int(k))
	}
}

// Correction describes one corrector engagement.
type Correction struct {
	Method string         // reporting package, e.g. "epsilon"
	Column int            // table column (depth) of the repaired cell
	Index  int            // diagonal position of the repaired cell
	Kind   CorrectionKind // how the cell was repaired
	Raw    float64        // value produced by the direct formula
	Value  float64        // value stored in the table
}

// Observer receives correction events. It is called synchronously from the
// goroutine running Accelerate.
type Observer func(Correction)

// Diagnostics fans correction events out to an optional zap logger and an
// optional observer. The zero value reports nothing.
type Diagnostics struct {
	Logger   *zap.Logger
	Observer Observer
}

// Enabled reports whether anybody listens; engines skip building events otherwise.
func (d Diagnostics) Enabled() bool {
	return d.Logger != nil || d.Observer != nil
}

// Report delivers c to the logger (Debug level) and the observer.
func (d Diagnostics) Report(c Correction) {
	if d.Logger != nil {
		d.Logger.Debug("stability correction",
			zap.String("method", c.Method),
			zap.Int("column", c.Column),
			zap.Int("index", c.Index),
			zap.Stringer("kind", c.Kind),
			zap.Float64("raw", c.Raw),
			zap.Float64("value", c.Value),
		)
	}
	if d.Observer != nil {
		d.Observer(c)
	}
}
