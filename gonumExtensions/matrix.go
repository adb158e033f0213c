package gonumExtensions

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Zeros returns a (m by n) matrix filled with zeros. gonum cannot hold a
// matrix with a zero dimension, so an empty matrix is returned instead.
func Zeros(m, n int) *mat.Dense {
	if m <= 0 || n <= 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(m, n, nil)
}

// Embed copies data into row of matrix starting at column col.
// It reports false when data does not fit the row.
func Embed(matrix *mat.Dense, row, col int, data []float64) bool {
	if len(data) == 0 {
		return true
	}
	m, n := matrix.Dims()
	if row < 0 || row >= m || col < 0 || col+len(data) > n {
		return false
	}
	copy(matrix.RawRowView(row)[col:], data)
	return true
}

// NANORINF checks if there are any NAN or INF in data
func NANORINF(data []float64) bool {
	for _, value := range data {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return true
		}
	}
	return false
}
