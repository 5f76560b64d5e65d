package epsilon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/shanks/accel"
)

const pkg = "epsilon"

// DefaultThreshold is the default epsilon_threshold of the compact extrapolator.
const DefaultThreshold = 1e-3

// Sentinel errors returned by the epsilon package.
var (
	// ErrNilSeries indicates that New or NewCompact received a nil series.
	ErrNilSeries = fmt.Errorf("%s: %w: series is nil", pkg, accel.ErrDomain)

	// ErrCellRange indicates a Table.At lookup outside the computed triangle.
	ErrCellRange = errors.New("epsilon: table cell out of range")

	// ErrBadThreshold indicates a non-positive or non-finite threshold.
	ErrBadThreshold = errors.New("epsilon: threshold must be positive and finite")

	// ErrBadLimit indicates an extrapolator limit that is not an odd number >= 3.
	ErrBadLimit = errors.New("epsilon: limit must be an odd number >= 3")
)

// MemoryMode controls how the engine stores the epsilon table.
//
//   - Rolling   — four rows reused as a ring (columns k−3 … k). The row of
//     column k+1 overwrites column k−3 in place. Memory: O(m).
//   - FullTable — every column is kept. Memory: O(m²).
type MemoryMode int

const (
	// Rolling keeps a ring of four rows.
	Rolling MemoryMode = iota

	// FullTable keeps the whole triangle.
	FullTable
)

// Window selects which partial sums seed the table and which cell is the answer.
type Window int

const (
	// Canonical seeds S(n−1) … S(n−1+2·order) and answers ε_{2·order}^{(n−1)}.
	Canonical Window = iota

	// Diagonal seeds S(n−1) … S(2n−1+2·order) and answers at the tip of the
	// table; the parity of n decides which column holds it.
	Diagonal
)

// Options configures the epsilon accelerators.
//
// MemoryMode – table storage (Rolling by default).
// Window     – seeding/selection policy (Canonical by default).
// Threshold  – epsilon_threshold of the compact extrapolator (1e-3 by default).
// Logger     – optional; corrector engagements are logged at Debug level.
// Observer   – optional; receives every corrector engagement.
type Options struct {
	MemoryMode MemoryMode
	Window     Window
	Threshold  float64
	Logger     *zap.Logger
	Observer   accel.Observer
}

// Option represents a functional option for configuring the accelerators.
type Option func(*Options)

// DefaultOptions returns Rolling storage, the Canonical window, the default
// threshold and no diagnostics.
func DefaultOptions() Options {
	return Options{
		MemoryMode: Rolling,
		Window:     Canonical,
		Threshold:  DefaultThreshold,
	}
}

// WithMemoryMode selects Rolling or FullTable storage.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithWindow selects the Canonical or Diagonal window policy.
func WithWindow(w Window) Option {
	return func(o *Options) {
		o.Window = w
	}
}

// WithThreshold sets epsilon_threshold for the compact extrapolator; it is
// honoured by NewCompact and ignored by New. Panics with ErrBadThreshold if t
// is not positive and finite.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if !(t > 0) || math.IsInf(t, 1) {
			panic(ErrBadThreshold.Error())
		}
		o.Threshold = t
	}
}

// WithLogger reports corrector engagements to l at Debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver delivers every corrector engagement to fn.
func WithObserver(fn accel.Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) diagnostics() accel.Diagnostics {
	return accel.Diagnostics{Logger: o.Logger, Observer: o.Observer}
}

var (
	memoryModeNames = [...]string{"rolling", "full-table"}
	windowNames     = [...]string{"canonical", "diagonal"}
)

// String returns the lower-case name used in configuration files.
func (m MemoryMode) String() string {
	if m < 0 || int(m) >= len(memoryModeNames) {
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}

	return memoryModeNames[m]
}

// String returns the lower-case name used in configuration files.
func (w Window) String() string {
	if w < 0 || int(w) >= len(windowNames) {
		return fmt.Sprintf("Window(%d)", int(w))
	}

	return windowNames[w]
}

// ParseMemoryMode maps a name produced by String back to its MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	for i, name := range memoryModeNames {
		if strings.EqualFold(s, name) {
			return MemoryMode(i), nil
		}
	}

	return 0, accel.Domainf(pkg, "unknown memory mode %q", s)
}

// ParseWindow maps a name produced by String back to its Window.
func ParseWindow(s string) (Window, error) {
	for i, name := range windowNames {
		if strings.EqualFold(s, name) {
			return Window(i), nil
		}
	}

	return 0, accel.Domainf(pkg, "unknown window %q", s)
}
