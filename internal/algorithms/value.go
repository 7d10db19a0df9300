package algorithms

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is the output of an algorithm: either a Scalar or a Matrix.
type Value interface {
	// Equal reports whether other is the same kind of value with identical contents.
	Equal(other Value) bool
}

// Scalar is an integer algorithm result.
type Scalar int64

// Equal implements Value.
func (s Scalar) Equal(other Value) bool {
	o, ok := other.(Scalar)
	return ok && o == s
}

// Matrix is a square grid of integers stored row-major.
type Matrix struct {
	size int
	data []int64
}

// NewMatrix allocates a zero-filled size x size matrix.
func NewMatrix(size int) Matrix {
	if size < 0 {
		size = 0
	}
	return Matrix{size: size, data: make([]int64, size*size)}
}

// MatrixFromRows copies rows into a Matrix. Rows must form a square.
func MatrixFromRows(rows [][]int64) (Matrix, error) {
	m := NewMatrix(len(rows))
	for i, row := range rows {
		if len(row) != m.size {
			return Matrix{}, fmt.Errorf("matrix row %d has %d columns, want %d", i, len(row), m.size)
		}
		copy(m.data[i*m.size:(i+1)*m.size], row)
	}
	return m, nil
}

// Size returns the number of rows (and columns).
func (m Matrix) Size() int { return m.size }

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) int64 {
	return m.data[i*m.size+j]
}

// Rows returns a copy of the matrix as a slice of rows.
func (m Matrix) Rows() [][]int64 {
	rows := make([][]int64, m.size)
	for i := range rows {
		rows[i] = make([]int64, m.size)
		copy(rows[i], m.data[i*m.size:(i+1)*m.size])
	}
	return rows
}

// Equal implements Value. Matrices are equal when sizes match and every element matches.
func (m Matrix) Equal(other Value) bool {
	o, ok := other.(Matrix)
	if !ok || o.size != m.size {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	if m.size == 0 {
		return "Matrix(0x0)"
	}
	return fmt.Sprintf("Matrix(%dx%d, [0][0]=%d)", m.size, m.size, m.data[0])
}

// MarshalJSON encodes the matrix as an array of rows.
func (m Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}

// UnmarshalJSON decodes an array of rows.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]int64
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	decoded, err := MatrixFromRows(rows)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// MarshalYAML encodes the matrix as a sequence of rows.
func (m Matrix) MarshalYAML() (interface{}, error) {
	return m.Rows(), nil
}

// DecodeValue turns a JSON number into a Scalar and a JSON array into a Matrix.
// A null or empty document decodes to a nil Value.
func DecodeValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var m Matrix
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, fmt.Errorf("failed to decode matrix value: %w", err)
		}
		return m, nil
	}

	var s int64
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scalar value: %w", err)
	}
	return Scalar(s), nil
}
