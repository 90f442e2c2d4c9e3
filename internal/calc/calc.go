// Package calc holds the deliberately slow computations of the calculator
// exercise and a memoizing wrapper around them.
package calc

import "github.com/five82/gridlab/internal/memo"

// MaxFibonacciInput caps the naive recursion so the UI stays responsive.
const MaxFibonacciInput = 25

// Fibonacci computes fib(min(n, MaxFibonacciInput)) by naive recursion.
func Fibonacci(n int) int {
	return fib(min(n, MaxFibonacciInput))
}

func fib(n int) int {
	if n <= 1 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

// PrimeFactors returns the prime factorization of n in ascending order.
// Values below 2 have no factors.
func PrimeFactors(n int) []int {
	var factors []int
	divisor := 2
	for n >= 2 {
		if n%divisor == 0 {
			factors = append(factors, divisor)
			n /= divisor
			continue
		}
		divisor++
	}
	return factors
}

// Result is the calculator output for one input.
type Result struct {
	Input     int
	Capped    int
	Fibonacci int
	Factors   []int
}

// Calculator memoizes Result on the input alone.
type Calculator struct {
	cache memo.Value[int, Result]
}

// Compute returns the result for input, reusing the previous result when
// input is unchanged.
func (c *Calculator) Compute(input int) Result {
	return c.cache.Get(input, func(n int) Result {
		return Result{
			Input:     n,
			Capped:    min(n, MaxFibonacciInput),
			Fibonacci: Fibonacci(n),
			Factors:   PrimeFactors(n),
		}
	})
}

// Recomputations returns how many times Compute did the expensive work.
func (c *Calculator) Recomputations() int {
	return c.cache.Stats().Misses
}
