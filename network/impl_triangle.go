// SPDX-License-Identifier: MIT

package network

import "gonum.org/v1/gonum/spatial/r2"

// TriangleCount returns the point count of a Triangle with size rows: the
// triangular number size·(size+1)/2.
func TriangleCount(size int) int { return size * (size + 1) / 2 }

// synthTriangle builds an equilateral triangle, row 0 first.
//
// Row r (0 ≤ r < size) holds size-r points spaced by pitch and centered on
// x = 0, at y_r = (√3/2)·pitch·r − height/2 with height = (√3/2)·pitch·(size-1),
// so the widest row sits at the bottom and the apex at the top.
// Complexity: O(number) time and memory.
func synthTriangle(size int, pitch float64, number int) []r2.Vec {
	dy := rowHeight * pitch
	height := dy * float64(size-1)

	pts := make([]r2.Vec, 0, number)
	for r := 0; r < size; r++ {
		y := dy*float64(r) - height/2
		for _, x := range centeredSpan(size-r, pitch) {
			pts = append(pts, r2.Vec{X: x, Y: y})
		}
	}
	return pts
}
