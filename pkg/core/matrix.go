package core

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant
// is zero.
var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// Matrix4 is a 4x4 matrix in row-major order, used for affine transforms.
type Matrix4 [4][4]float64

// Matrix3 is a 3x3 matrix, used as an intermediate for determinants.
type Matrix3 [3][3]float64

// Matrix2 is a 2x2 matrix, the base case for determinants.
type Matrix2 [2][2]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MulTuple returns the matrix applied to a tuple.
func (m Matrix4) MulTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Submatrix returns the 3x3 matrix left after removing a row and column.
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var result Matrix3
	for r, sr := 0, 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c, sc := 0, 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Matrix4) Determinant() float64 {
	var det float64
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse of the matrix, or ErrSingularMatrix when the
// determinant is zero. Inversion is the expensive step of the transform
// pipeline; callers cache the result rather than inverting per ray.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, ErrSingularMatrix
	}
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// [col][row] rather than [row][col] transposes the cofactors.
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals reports whether two matrices are equal within floating tolerance.
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) >= epsilon {
				return false
			}
		}
	}
	return true
}

// Submatrix returns the 2x2 matrix left after removing a row and column.
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var result Matrix2
	for r, sr := 0, 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c, sc := 0, 0; c < 3; c++ {
			if c == col {
				continue
			}
			result[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Matrix3) Determinant() float64 {
	var det float64
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Determinant returns ad - bc.
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
