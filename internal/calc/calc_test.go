package calc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFibonacci(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
		{25, 75025},
		{40, 75025}, // capped
		{-3, -3},
	}
	for _, tc := range cases {
		if got := Fibonacci(tc.in); got != tc.want {
			t.Fatalf("Fibonacci(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPrimeFactors(t *testing.T) {
	cases := []struct {
		in   int
		want []int
	}{
		{0, nil},
		{1, nil},
		{2, []int{2}},
		{20, []int{2, 2, 5}},
		{97, []int{97}},
		{360, []int{2, 2, 2, 3, 3, 5}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, PrimeFactors(tc.in)); diff != "" {
			t.Fatalf("PrimeFactors(%d) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestCalculator_MemoizesOnInput(t *testing.T) {
	var c Calculator
	r := c.Compute(20)
	if r.Fibonacci != 6765 || r.Capped != 20 {
		t.Fatalf("Compute(20) = %+v", r)
	}
	c.Compute(20)
	c.Compute(20)
	if got := c.Recomputations(); got != 1 {
		t.Fatalf("Recomputations = %d, want 1", got)
	}
	c.Compute(21)
	if got := c.Recomputations(); got != 2 {
		t.Fatalf("Recomputations = %d, want 2", got)
	}
}
