package series

import "math"

// Factorial returns n! as a float64 (+Inf once it overflows, 0 for n < 0).
func Factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

// Binomial returns C(n, k), evaluated multiplicatively to stay exact for the
// moderate arguments the Levin weights need. Out-of-range k gives 0.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}

	return math.Round(c)
}

// Pochhammer returns the rising factorial (x)_k = x(x+1)...(x+k-1); (x)_0 = 1.
func Pochhammer(x float64, k int) float64 {
	p := 1.0
	for i := 0; i < k; i++ {
		p *= x + float64(i)
	}

	return p
}

// MinusOnePow returns (-1)^n.
func MinusOnePow(n int) float64 {
	if n&1 == 1 {
		return -1
	}

	return 1
}
