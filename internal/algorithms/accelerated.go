//go:build !noaccel

package algorithms

import apperrors "accelbench/internal/errors"

func init() {
	registeredAccelerated = tunedSuite{}
}

// tunedSuite mirrors the reference algorithms with tuned loops: flat
// row-major storage, i-k-j multiplication order and integer square bounds.
type tunedSuite struct{}

func (tunedSuite) Name() string { return "accelerated" }

func (tunedSuite) SumOfSquares(n int) (int64, error) {
	if n < 0 {
		return 0, apperrors.NewArgumentError("SumOfSquares", "n", n, "a non-negative integer")
	}

	// (i+1)² = i² + 2i + 1
	var total, square int64
	for i := int64(1); i <= int64(n); i++ {
		square += 2*i - 1
		total += square
	}
	return total, nil
}

func (tunedSuite) Fibonacci(n int) (int64, error) {
	if err := checkFibonacci("Fibonacci", n); err != nil {
		return 0, err
	}
	return fibRecursive(n), nil
}

func (tunedSuite) PrimeCount(limit int) (int64, error) {
	if limit < 0 {
		return 0, apperrors.NewArgumentError("PrimeCount", "limit", limit, "a non-negative integer")
	}

	var count int64
	for num := 2; num <= limit; num++ {
		isPrime := true
		for i := 2; i*i <= num; i++ {
			if num%i == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			count++
		}
	}
	return count, nil
}

func (tunedSuite) MatrixMultiply(size int) (Matrix, error) {
	if err := checkMatrixSize("MatrixMultiply", size); err != nil {
		return Matrix{}, err
	}

	a := NewMatrix(size)
	b := NewMatrix(size)
	for i := 0; i < size; i++ {
		row := i * size
		for j := 0; j < size; j++ {
			a.data[row+j] = int64(i + j)
			b.data[row+j] = int64(i*j + 1)
		}
	}

	result := NewMatrix(size)
	for i := 0; i < size; i++ {
		out := result.data[i*size : (i+1)*size]
		for k := 0; k < size; k++ {
			aik := a.data[i*size+k]
			bk := b.data[k*size : (k+1)*size]
			for j, bkj := range bk {
				out[j] += aik * bkj
			}
		}
	}
	return result, nil
}

func (tunedSuite) SumOfSquaresOptimized(n int) (int64, error) {
	return SumOfSquaresOptimized(n)
}

func (tunedSuite) FibonacciMemoized(n int) (int64, error) {
	return FibonacciMemoized(n)
}

func (tunedSuite) PrimeCountSieve(limit int) (int64, error) {
	return PrimeCountSieve(limit)
}
