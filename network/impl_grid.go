// SPDX-License-Identifier: MIT
// Package: coherent-beams/network
//
// impl_grid.go — Square(size) and Rectangle(rows, cols) synthesis.
//
// Canonical model:
//   • One centered 1-D span per axis, spaced by pitch.
//   • Square is the rows == cols special case of Rectangle; both share
//     synthGrid so Rectangle(n, n) and Square(n) are point-for-point equal.
//
// Determinism:
//   • Row-major enumeration: idx = row·cols + col → (xs[row], ys[col]).

package network

import "gonum.org/v1/gonum/spatial/r2"

// SquareCount returns the point count of a Square: size².
func SquareCount(size int) int { return size * size }

// RectangleCount returns the point count of a Rectangle: rows·cols.
func RectangleCount(rows, cols int) int { return rows * cols }

// synthGrid enumerates a rows×cols grid in row-major order.
// Complexity: O(rows·cols) time and memory.
func synthGrid(rows, cols int, pitch float64) []r2.Vec {
	xs := centeredSpan(rows, pitch) // coordinate indexed by row
	ys := centeredSpan(cols, pitch) // coordinate indexed by col

	pts := make([]r2.Vec, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pts[row*cols+col] = r2.Vec{X: xs[row], Y: ys[col]}
		}
	}
	return pts
}
