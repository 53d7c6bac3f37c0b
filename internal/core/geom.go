// Package core provides fundamental types and utilities for the blockfall
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Point represents a 2D coordinate or offset on a grid.
// X grows rightwards, Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns the point translated by the given offset.
func (p Point) Add(off Point) Point {
	return Point{X: p.X + off.X, Y: p.Y + off.Y}
}

// Matrix is a rectangular 0/1 occupancy grid describing a piece shape.
// Row-major: m[row][col] != 0 means the cell is occupied.
type Matrix [][]uint8

// Rows returns the number of rows in the matrix.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns in the matrix.
// A matrix with zero rows has zero columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]uint8, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether two matrices have identical dimensions and cells.
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for r := range m {
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// RotateCW returns the matrix rotated 90 degrees clockwise: the transpose
// with each row reversed. An r×c matrix becomes c×r. Pure and total —
// any rectangular matrix is rotatable.
func RotateCW(m Matrix) Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, cols)
	for c := range out {
		out[c] = make([]uint8, rows)
		for r := 0; r < rows; r++ {
			out[c][rows-1-r] = m[r][c]
		}
	}
	return out
}

// SpawnPosition returns the top-of-board anchor that centers the shape
// horizontally: x = boardWidth/2 - cols/2, y = 0.
func SpawnPosition(m Matrix, boardWidth int) Point {
	return Point{X: boardWidth/2 - m.Cols()/2, Y: 0}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
