package algorithms

import apperrors "accelbench/internal/errors"

// MaxFibonacciN is the largest n whose Fibonacci number fits in an int64.
const MaxFibonacciN = 92

func checkFibonacci(op string, n int) error {
	if n < 0 {
		return apperrors.NewArgumentError(op, "n", n, "a non-negative integer")
	}
	if n > MaxFibonacciN {
		return apperrors.NewArgumentError(op, "n", n, "n <= 92 to fit in int64")
	}
	return nil
}

// Fibonacci returns fib(n) by plain double recursion.
//
// The recursion is intentionally unmemoized: its O(2^n) call tree is what the
// benchmark measures. Use FibonacciMemoized for the linear-time form.
func Fibonacci(n int) (int64, error) {
	if err := checkFibonacci("Fibonacci", n); err != nil {
		return 0, err
	}
	return fibRecursive(n), nil
}

func fibRecursive(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return fibRecursive(n-1) + fibRecursive(n-2)
}

// FibonacciMemoized returns fib(n) with a cache that lives for this call only.
func FibonacciMemoized(n int) (int64, error) {
	if err := checkFibonacci("FibonacciMemoized", n); err != nil {
		return 0, err
	}

	memo := make([]int64, n+1)
	for i := range memo {
		memo[i] = -1
	}

	var fib func(k int) int64
	fib = func(k int) int64 {
		if k <= 1 {
			return int64(k)
		}
		if memo[k] != -1 {
			return memo[k]
		}
		memo[k] = fib(k-1) + fib(k-2)
		return memo[k]
	}
	return fib(n), nil
}
