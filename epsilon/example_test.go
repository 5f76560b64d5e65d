package epsilon_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shanks/epsilon"
	"github.com/katalvlaran/shanks/series"
)

// ExampleAccelerator_Accelerate accelerates Σ 0.5^i, whose limit is 2.
// The raw partial sum S(5) is still 3% off; ε_4 is exact.
func ExampleAccelerator_Accelerate() {
	s := series.FromTerms(func(n int) float64 { return math.Pow(0.5, float64(n)) })
	acc := epsilon.New(s)

	v, err := acc.Accelerate(5, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("S(5)=%.5f accelerated=%.10f\n", s.PartialSum(5), v)
	// Output: S(5)=1.96875 accelerated=2.0000000000
}

// ExampleAccelerator_Table prints the even columns of a small table.
func ExampleAccelerator_Table() {
	s := series.FromTerms(func(n int) float64 { return math.Pow(0.5, float64(n)) })
	tab, err := epsilon.New(s, epsilon.WithWindow(epsilon.Diagonal)).Table(1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for j := tab.Base(); j < tab.Base()+tab.Seeds()-2; j++ {
		e0, _ := tab.At(0, j)
		e2, _ := tab.At(2, j)
		fmt.Printf("j=%d S=%.4f eps2=%.4f\n", j, e0, e2)
	}
	// Output:
	// j=0 S=1.0000 eps2=2.0000
	// j=1 S=1.5000 eps2=2.0000
}

// ExampleCompact_Extrapolate streams partial sums of ln 2 through the
// compact table.
func ExampleCompact_Extrapolate() {
	s := series.FromTerms(func(n int) float64 { return series.MinusOnePow(n) / float64(n+1) })
	est, err := epsilon.NewCompact(s).Extrapolate(5, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("ln2≈%.8f\n", est.Value)
	// Output: ln2≈0.69314718
}
