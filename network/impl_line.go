// SPDX-License-Identifier: MIT

package network

import "gonum.org/v1/gonum/spatial/r2"

// LineCount returns the point count of a Line: number itself.
func LineCount(number int) int { return number }

// synthLine places number points on the x-axis, centered on the origin:
// x_i = -((number-1)·pitch)/2 + i·pitch, y_i = 0.
func synthLine(number int, pitch float64) []r2.Vec {
	xs := centeredSpan(number, pitch)
	pts := make([]r2.Vec, number)
	for i, x := range xs {
		pts[i] = r2.Vec{X: x}
	}
	return pts
}
