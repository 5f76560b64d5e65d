package rho_test

import (
	"fmt"

	"github.com/katalvlaran/shanks/rho"
	"github.com/katalvlaran/shanks/series"
)

// ExampleAccelerator_Accelerate sums the Basel series (π²/6 ≈ 1.6449341)
// from its first ten partial sums.
func ExampleAccelerator_Accelerate() {
	s := series.FromTerms(func(n int) float64 { return 1 / float64((n+1)*(n+1)) })
	v, err := rho.New(s).Accelerate(1, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("S(9)=%.7f accelerated=%.7f\n", s.PartialSum(9), v)
	// Output: S(9)=1.5497677 accelerated=1.6449341
}
