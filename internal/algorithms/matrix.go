package algorithms

import apperrors "accelbench/internal/errors"

func checkMatrixSize(op string, size int) error {
	if size < 1 {
		return apperrors.NewArgumentError(op, "size", size, "a positive size")
	}
	return nil
}

// MatrixMultiply builds A[i][j] = i+j and B[i][j] = i*j+1 and returns A·B,
// computed with the textbook i-j-k loop over slices of rows.
func MatrixMultiply(size int) (Matrix, error) {
	if err := checkMatrixSize("MatrixMultiply", size); err != nil {
		return Matrix{}, err
	}

	a := make([][]int64, size)
	b := make([][]int64, size)
	for i := 0; i < size; i++ {
		a[i] = make([]int64, size)
		b[i] = make([]int64, size)
		for j := 0; j < size; j++ {
			a[i][j] = int64(i + j)
			b[i][j] = int64(i*j + 1)
		}
	}

	result := make([][]int64, size)
	for i := 0; i < size; i++ {
		result[i] = make([]int64, size)
		for j := 0; j < size; j++ {
			var sum int64
			for k := 0; k < size; k++ {
				sum += a[i][k] * b[k][j]
			}
			result[i][j] = sum
		}
	}

	return MatrixFromRows(result)
}
