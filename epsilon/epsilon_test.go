package epsilon_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/epsilon"
	"github.com/katalvlaran/shanks/series"
)

// geometric returns Σ x^i with a closed-form partial sum.
func geometric(x float64) series.Series[float64] {
	return series.Func[float64]{
		TermFunc:       func(n int) float64 { return math.Pow(x, float64(n)) },
		PartialSumFunc: func(n int) float64 { return (1 - math.Pow(x, float64(n+1))) / (1 - x) },
	}
}

// basel is Σ 1/(i+1)², slowly converging to π²/6.
func basel() series.Series[float64] {
	return series.FromTerms(func(n int) float64 { return 1 / float64((n+1)*(n+1)) })
}

// alternatingHarmonic is Σ (−1)^i/(i+1) = ln 2.
func alternatingHarmonic() series.Series[float64] {
	return series.FromTerms(func(n int) float64 { return series.MinusOnePow(n) / float64(n+1) })
}

type config struct {
	name string
	opts []epsilon.Option
}

var configs = []config{
	{"rolling/canonical", nil},
	{"full/canonical", []epsilon.Option{epsilon.WithMemoryMode(epsilon.FullTable)}},
	{"rolling/diagonal", []epsilon.Option{epsilon.WithWindow(epsilon.Diagonal)}},
	{"full/diagonal", []epsilon.Option{epsilon.WithWindow(epsilon.Diagonal), epsilon.WithMemoryMode(epsilon.FullTable)}},
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := epsilon.DefaultOptions()
	assert.Equal(t, epsilon.Rolling, o.MemoryMode)
	assert.Equal(t, epsilon.Canonical, o.Window)
	assert.Equal(t, epsilon.DefaultThreshold, o.Threshold)
	assert.Nil(t, o.Logger)
}

// TestWithThreshold_PanicsOnNonsense mirrors the option-constructor policy.
func TestWithThreshold_PanicsOnNonsense(t *testing.T) {
	for _, bad := range []float64{0, -1, math.Inf(1), math.NaN()} {
		assert.Panics(t, func() {
			o := epsilon.DefaultOptions()
			epsilon.WithThreshold(bad)(&o)
		})
	}
	acc := epsilon.New(geometric(0.5), epsilon.WithThreshold(0.5))
	assert.Equal(t, 0.5, acc.Options().Threshold)
}

// TestAccelerate_OrderZeroIdentity: order 0 returns PartialSum(n) verbatim.
func TestAccelerate_OrderZeroIdentity(t *testing.T) {
	s := basel()
	for _, c := range configs {
		acc := epsilon.New(s, c.opts...)
		for n := 0; n < 6; n++ {
			v, err := acc.Accelerate(n, 0)
			require.NoError(t, err, c.name)
			assert.Equal(t, s.PartialSum(n), v, c.name)
		}
	}
}

// TestAccelerate_DomainErrors checks the validation policy and the nil series.
func TestAccelerate_DomainErrors(t *testing.T) {
	acc := epsilon.New(geometric(0.5))
	for _, tc := range []struct{ n, order int }{{0, 1}, {-1, 0}, {3, -2}, {1, math.MaxInt / 2}, {math.MaxInt, 1}} {
		_, err := acc.Accelerate(tc.n, tc.order)
		assert.ErrorIs(t, err, accel.ErrDomain, "n=%d order=%d", tc.n, tc.order)
		_, err = acc.Table(tc.n, tc.order)
		assert.ErrorIs(t, err, accel.ErrDomain)
	}

	_, err := epsilon.New[float64](nil).Accelerate(1, 1)
	assert.ErrorIs(t, err, epsilon.ErrNilSeries)
	assert.ErrorIs(t, err, accel.ErrDomain)
}

// TestAccelerate_Geometric: x=0.5, n=5, order=2 matches 2 to 10+ digits while
// S(5) is off in the second digit.
func TestAccelerate_Geometric(t *testing.T) {
	s := geometric(0.5)
	raw := s.PartialSum(5)
	assert.Greater(t, math.Abs(raw-2), 1e-2)

	for _, c := range configs {
		v, err := epsilon.New(s, c.opts...).Accelerate(5, 2)
		require.NoError(t, err, c.name)
		assert.InDelta(t, 2.0, v, 2e-10, c.name)
	}
}

// TestAccelerate_ExactSumFixedPoint: once the partial sums stop moving the
// result is that limit, although every difference in the table is zero.
func TestAccelerate_ExactSumFixedPoint(t *testing.T) {
	s, err := series.NewSlice([]float64{1, 0.5, 0.25})
	require.NoError(t, err)

	for _, c := range configs {
		acc := epsilon.New[float64](s, c.opts...)
		for n := 2; n <= 5; n++ {
			for order := 1; order <= 3; order++ {
				v, err := acc.Accelerate(n, order)
				require.NoError(t, err, "%s n=%d order=%d", c.name, n, order)
				assert.InDelta(t, 1.75, v, 1e-12, "%s n=%d order=%d", c.name, n, order)
			}
		}
	}
}

// TestAccelerate_FixedPointIgnoresEarlierSums: a geometric series cut after
// six terms still yields the truncated sum, not the infinite one, in every
// window once n reaches the cut.
func TestAccelerate_FixedPointIgnoresEarlierSums(t *testing.T) {
	s, err := series.NewSlice([]float64{1, 0.5, 0.25, 0.125, 0.0625, 0.03125})
	require.NoError(t, err)

	for _, c := range configs {
		acc := epsilon.New[float64](s, c.opts...)
		for n := 5; n <= 8; n++ {
			for order := 1; order <= 4; order++ {
				v, err := acc.Accelerate(n, order)
				require.NoError(t, err, "%s n=%d order=%d", c.name, n, order)
				assert.InDelta(t, 1.96875, v, 1e-12, "%s n=%d order=%d", c.name, n, order)
			}
		}
	}
}

// TestAccelerate_Degeneracy: a zero term makes the first difference vanish.
// The result must be finite or an instability error, never NaN.
func TestAccelerate_Degeneracy(t *testing.T) {
	s := series.FromTerms(func(n int) float64 {
		switch n {
		case 0:
			return 1
		case 1:
			return 0
		default:
			return math.Pow(0.5, float64(n-1))
		}
	})
	for _, c := range configs {
		acc := epsilon.New(s, c.opts...)
		for n := 1; n <= 4; n++ {
			for order := 1; order <= 3; order++ {
				v, err := acc.Accelerate(n, order)
				if err != nil {
					assert.ErrorIs(t, err, accel.ErrInstability, c.name)

					continue
				}
				assert.False(t, math.IsNaN(v), c.name)
				assert.False(t, math.IsInf(v, 0), c.name)
			}
		}
	}
}

// TestAccelerate_Instability: a diverging partial sum cannot be repaired.
func TestAccelerate_Instability(t *testing.T) {
	s := series.FromPartialSums(func(int) float64 { return math.Inf(1) })
	_, err := epsilon.New(s).Accelerate(1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, accel.ErrInstability)
	assert.NotErrorIs(t, err, accel.ErrDomain)
}

// TestAccelerate_OrderOneIsAitken: ε_2^{(n−1)} = S(n) + a(n)a(n+1)/(a(n)−a(n+1)).
func TestAccelerate_OrderOneIsAitken(t *testing.T) {
	s := basel()
	acc := epsilon.New(s)
	for n := 1; n < 8; n++ {
		a0, a1 := s.Term(n), s.Term(n+1)
		want := s.PartialSum(n) + a0*a1/(a0-a1)
		v, err := acc.Accelerate(n, 1)
		require.NoError(t, err)
		assert.InEpsilon(t, want, v, 1e-12, "n=%d", n)
	}
}

// naiveTable builds ε by the bare recurrence over S(0) … S(m).
func naiveTable(s series.Series[float64], m int) [][]float64 {
	eps := make([][]float64, m+2) // eps[k+1] is column k
	eps[0] = make([]float64, m+2)
	eps[1] = make([]float64, m+1)
	for j := 0; j <= m; j++ {
		eps[1][j] = s.PartialSum(j)
	}
	for k := 0; k < m; k++ {
		eps[k+2] = make([]float64, m-k)
		for j := 0; j < m-k; j++ {
			eps[k+2][j] = eps[k][j+1] + 1/(eps[k+1][j+1]-eps[k+1][j])
		}
	}

	return eps
}

// TestAccelerate_ParityRoundTrip compares both storages against a brute-force
// triangle and the explicit selection rule.
func TestAccelerate_ParityRoundTrip(t *testing.T) {
	s := basel()
	for n := 3; n <= 5; n++ {
		for order := 1; order <= 2; order++ {
			name := fmt.Sprintf("n=%d/order=%d", n, order)

			// Canonical: ε_{2order}^{(n−1)}.
			full := naiveTable(s, n-1+2*order)
			wantC := full[2*order+1][n-1]
			rc, err := epsilon.New(s).Accelerate(n, order)
			require.NoError(t, err)
			fc, err := epsilon.New(s, epsilon.WithMemoryMode(epsilon.FullTable)).Accelerate(n, order)
			require.NoError(t, err)
			assert.Equal(t, rc, fc, name)
			assert.InEpsilon(t, wantC, rc, 1e-12, name)

			// Diagonal: N = n+2order steps from base n−1,
			// odd → ε_{N−1}^{(n)}, even → ε_N^{(n−1)}.
			N := n + 2*order
			var wantD float64
			diag := naiveTable(s, n-1+N)
			if N%2 == 1 {
				wantD = diag[N][n]
			} else {
				wantD = diag[N+1][n-1]
			}
			rd, err := epsilon.New(s, epsilon.WithWindow(epsilon.Diagonal)).Accelerate(n, order)
			require.NoError(t, err)
			fd, err := epsilon.New(s, epsilon.WithWindow(epsilon.Diagonal), epsilon.WithMemoryMode(epsilon.FullTable)).Accelerate(n, order)
			require.NoError(t, err)
			assert.Equal(t, rd, fd, name)
			assert.InEpsilon(t, wantD, rd, 1e-10, name)
		}
	}
}

// TestSelector pins the parity rule and the window layouts.
func TestSelector(t *testing.T) {
	col, j := epsilon.ExportedTerminal(4)
	assert.Equal(t, [2]int{4, 0}, [2]int{col, j})
	col, j = epsilon.ExportedTerminal(7)
	assert.Equal(t, [2]int{6, 1}, [2]int{col, j})

	base, m, steps := epsilon.ExportedLayout(epsilon.Canonical, 5, 2)
	assert.Equal(t, [3]int{4, 4, 4}, [3]int{base, m, steps})
	base, m, steps = epsilon.ExportedLayout(epsilon.Diagonal, 5, 2)
	assert.Equal(t, [3]int{4, 9, 9}, [3]int{base, m, steps})
	base, m, steps = epsilon.ExportedLayout(epsilon.Diagonal, 3, 0)
	assert.Equal(t, [3]int{3, 0, 0}, [3]int{base, m, steps})
}

// TestTable_AtAndResult checks addressing, range errors and the selector.
func TestTable_AtAndResult(t *testing.T) {
	s := geometric(0.5)
	acc := epsilon.New(s)
	tab, err := acc.Table(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Base())
	assert.Equal(t, 3, tab.Seeds())
	assert.Equal(t, 2, tab.Depth())

	v, err := tab.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, s.PartialSum(3), v)
	v, err = tab.At(-1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	v, err = tab.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v) // 1/a(3)

	_, err = tab.At(2, 3)
	assert.ErrorIs(t, err, epsilon.ErrCellRange)
	_, err = tab.At(3, 2)
	assert.ErrorIs(t, err, epsilon.ErrCellRange)
	_, err = tab.At(0, 1)
	assert.ErrorIs(t, err, epsilon.ErrCellRange)

	res, err := tab.Result()
	require.NoError(t, err)
	direct, err := acc.Accelerate(3, 1)
	require.NoError(t, err)
	assert.Equal(t, direct, res)
	cell, err := tab.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, res, cell)
}

// TestIdempotence: a series seeded with the table's own column 0, or with a
// constant accelerated value, is returned unchanged at order 0.
func TestIdempotence(t *testing.T) {
	s := alternatingHarmonic()
	acc := epsilon.New(s)
	v, err := acc.Accelerate(4, 2)
	require.NoError(t, err)

	again, err := epsilon.New(series.FromPartialSums(func(int) float64 { return v })).Accelerate(4, 0)
	require.NoError(t, err)
	assert.Equal(t, v, again)

	tab, err := acc.Table(4, 2)
	require.NoError(t, err)
	seeded := series.FromPartialSums(func(j int) float64 {
		c, _ := tab.At(0, j+tab.Base())

		return c
	})
	for j := 0; j < tab.Seeds(); j++ {
		got, err := epsilon.New(seeded).Accelerate(j, 0)
		require.NoError(t, err)
		assert.Equal(t, s.PartialSum(j+tab.Base()), got)
	}
}

// TestAccelerate_AlternatingHarmonic: ln 2 from a handful of terms.
func TestAccelerate_AlternatingHarmonic(t *testing.T) {
	for _, c := range configs {
		v, err := epsilon.New(alternatingHarmonic(), c.opts...).Accelerate(4, 4)
		require.NoError(t, err, c.name)
		assert.InDelta(t, math.Ln2, v, 1e-7, c.name)
	}
}

// TestAccelerate_Float32 runs the engine on a named float32 type.
func TestAccelerate_Float32(t *testing.T) {
	s := series.FromTerms(func(n int) float32 { return float32(math.Pow(0.5, float64(n))) })
	v, err := epsilon.New(s).Accelerate(3, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, float64(v), 1e-5)
}

// TestDiagnostics_ReportsCorrections: the fixed-point series forces the
// clamp and the cross rule; both reach the observer and the zap logger.
func TestDiagnostics_ReportsCorrections(t *testing.T) {
	s, err := series.NewSlice([]float64{1, 0.5, 0.25})
	require.NoError(t, err)
	core, logs := observer.New(zapcore.DebugLevel)
	kinds := map[accel.CorrectionKind]int{}

	acc := epsilon.New[float64](s,
		epsilon.WithLogger(zap.New(core)),
		epsilon.WithObserver(func(c accel.Correction) {
			assert.Equal(t, "epsilon", c.Method)
			kinds[c.Kind]++
		}),
	)
	v, err := acc.Accelerate(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.75, v)

	assert.Positive(t, kinds[accel.Clamped])
	assert.Positive(t, kinds[accel.CrossRule])
	assert.Positive(t, kinds[accel.Propagated])
	total := kinds[accel.Clamped] + kinds[accel.CrossRule] + kinds[accel.Propagated]
	assert.Equal(t, total, logs.FilterMessage("stability correction").Len())
}

// TestDiagnostics_SilentByDefault: no logger, no observer, same answer.
func TestDiagnostics_SilentByDefault(t *testing.T) {
	s, err := series.NewSlice([]float64{1, 0.5, 0.25})
	require.NoError(t, err)
	v, err := epsilon.New[float64](s).Accelerate(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.75, v)
}

// TestCrossRule checks the identity, the missing-W form and the infinite centre.
func TestCrossRule(t *testing.T) {
	c, n, s, w := 3.0, 1.0, 2.0, 7.0
	e := epsilon.ExportedCrossRule(c, n, s, w, true)
	lhs := 1/(n-c) + 1/(s-c)
	rhs := 1/(w-c) + 1/(e-c)
	assert.InDelta(t, lhs, rhs, 1e-12)

	// Without W this is Aitken on 1, 2, 4.
	assert.InDelta(t, 0.0, epsilon.ExportedCrossRule(2, 1, 4, 0, false), 1e-15)

	// Infinite centre: E = N + S − W.
	assert.Equal(t, 4.0, epsilon.ExportedCrossRule(math.Inf(1), 1, 5, 2, true))

	// Coinciding neighbours: E collapses to C.
	assert.Equal(t, 1.75, epsilon.ExportedCrossRule(1.75, 1.75, 1.75, 0, false))
}

// TestCrossRule_LargeCentreMatchesIdentity: the large-centre form satisfies
// the same identity in relative terms.
func TestCrossRule_LargeCentreMatchesIdentity(t *testing.T) {
	c, n, s, w := 1e15, 1e15+4, 1e15-2, 1e15+8
	e := epsilon.ExportedCrossRule(c, n, s, w, true)
	require.False(t, math.IsNaN(e))
	sigma := 1/(n-c) + 1/(s-c) - 1/(w-c)
	assert.InEpsilon(t, c+1/sigma, e, 1e-9)
}

// TestErrorsAreDistinct makes sure epsilon errors are matchable.
func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(epsilon.ErrCellRange, accel.ErrDomain))
	assert.True(t, errors.Is(epsilon.ErrNilSeries, accel.ErrDomain))
}

func TestEnumNames_RoundTrip(t *testing.T) {
	for _, m := range []epsilon.MemoryMode{epsilon.Rolling, epsilon.FullTable} {
		got, err := epsilon.ParseMemoryMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, w := range []epsilon.Window{epsilon.Canonical, epsilon.Diagonal} {
		got, err := epsilon.ParseWindow(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
	_, err := epsilon.ParseMemoryMode("ring")
	assert.ErrorIs(t, err, accel.ErrDomain)
	_, err = epsilon.ParseWindow("anti-diagonal")
	assert.ErrorIs(t, err, accel.ErrDomain)
	assert.Equal(t, "Window(4)", epsilon.Window(4).String())
}
