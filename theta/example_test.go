package theta_test

import (
	"fmt"

	"github.com/katalvlaran/shanks/series"
	"github.com/katalvlaran/shanks/theta"
)

func ExampleAccelerator_Accelerate() {
	s := series.FromTerms(func(n int) float64 { return series.MinusOnePow(n) / float64(n+1) })
	v, err := theta.New(s).Accelerate(1, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("S(10)=%.7f accelerated=%.7f\n", s.PartialSum(10), v)
	// Output: S(10)=0.7365440 accelerated=0.6931472
}
