package algorithms

// Suite is one implementation variant of the four benchmarked algorithms.
type Suite interface {
	Name() string
	SumOfSquares(n int) (int64, error)
	Fibonacci(n int) (int64, error)
	PrimeCount(limit int) (int64, error)
	MatrixMultiply(size int) (Matrix, error)
}

// Optimizer is implemented by suites that also provide the alternative
// algorithms. Each method must return exactly what its naive counterpart returns.
type Optimizer interface {
	SumOfSquaresOptimized(n int) (int64, error)
	FibonacciMemoized(n int) (int64, error)
	PrimeCountSieve(limit int) (int64, error)
}

type referenceSuite struct{}

// Reference returns the baseline suite built on the package-level functions.
func Reference() Suite { return referenceSuite{} }

func (referenceSuite) Name() string                            { return "reference" }
func (referenceSuite) SumOfSquares(n int) (int64, error)       { return SumOfSquares(n) }
func (referenceSuite) Fibonacci(n int) (int64, error)          { return Fibonacci(n) }
func (referenceSuite) PrimeCount(limit int) (int64, error)     { return PrimeCount(limit) }
func (referenceSuite) MatrixMultiply(size int) (Matrix, error) { return MatrixMultiply(size) }
