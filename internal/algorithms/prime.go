package algorithms

import (
	"math"

	apperrors "accelbench/internal/errors"
)

// PrimeCount counts primes p with 2 <= p <= limit by trial division up to
// floor(sqrt(p)).
func PrimeCount(limit int) (int64, error) {
	if limit < 0 {
		return 0, apperrors.NewArgumentError("PrimeCount", "limit", limit, "a non-negative integer")
	}
	if limit < 2 {
		return 0, nil
	}

	var count int64
	for num := 2; num <= limit; num++ {
		isPrime := true
		bound := int(math.Sqrt(float64(num)))
		for i := 2; i <= bound; i++ {
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

// PrimeCountSieve counts the same primes with a Sieve of Eratosthenes over [0, limit].
func PrimeCountSieve(limit int) (int64, error) {
	if limit < 0 {
		return 0, apperrors.NewArgumentError("PrimeCountSieve", "limit", limit, "a non-negative integer")
	}
	if limit < 2 {
		return 0, nil
	}

	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	var count int64
	for i := 2; i <= limit; i++ {
		if !composite[i] {
			count++
		}
	}
	return count, nil
}
