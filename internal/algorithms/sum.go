package algorithms

import apperrors "accelbench/internal/errors"

// SumOfSquares returns 1² + 2² + ... + n² by linear accumulation.
// Beyond n ≈ 3.0e6 the int64 total wraps modulo 2^64.
func SumOfSquares(n int) (int64, error) {
	if n < 0 {
		return 0, apperrors.NewArgumentError("SumOfSquares", "n", n, "a non-negative integer")
	}

	var total int64
	for i := 1; i <= n; i++ {
		v := int64(i)
		total += v * v
	}
	return total, nil
}

// SumOfSquaresOptimized returns the same value as SumOfSquares using the
// closed form n(n+1)(2n+1)/6.
//
// The divisions by 2 and 3 are applied to whichever factor they divide before
// multiplying, so no intermediate exceeds the final result. Past the int64
// range both forms therefore wrap to the same value.
func SumOfSquaresOptimized(n int) (int64, error) {
	if n < 0 {
		return 0, apperrors.NewArgumentError("SumOfSquaresOptimized", "n", n, "a non-negative integer")
	}

	a, b, c := int64(n), int64(n)+1, 2*int64(n)+1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	switch {
	case a%3 == 0:
		a /= 3
	case b%3 == 0:
		b /= 3
	default:
		c /= 3
	}
	return a * b * c, nil
}
