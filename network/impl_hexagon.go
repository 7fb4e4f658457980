// SPDX-License-Identifier: MIT
// Package: coherent-beams/network
//
// impl_hexagon.go — ring-based hexagonal lattice synthesis.
//
// Canonical model:
//   • rings = 0 is the center point alone; each ring adds 6·ring points.
//   • The widest (equatorial) row holds diagonal = 2·rings+1 points.
//   • Row i above the equator (0 ≤ i ≤ rings) sits at y = √3·i·pitch/2 and
//     holds diagonal−i points, centered on x = 0, spaced by pitch.
//
// Construction:
//   1. Emit rows i = rings … 0 (top row first, each left to right). This is
//      the upper half plus the equator.
//   2. The first (number−1)/2 − rings points are the upper half without the
//      equator. Rotating them by π and reversing their order yields the rows
//      below the equator, bottom row last, each left to right.
//   3. Append the mirrored half. The equator appears exactly once.
//
// The prefix length follows from the row sizes:
//   upper (with equator)    = Σ_{i=0..r} (2r+1−i) = (r+1)(2r+1) − r(r+1)/2
//   upper (without equator) = (3r²+r)/2 = (number−1)/2 − r,  number = 3r²+3r+1.

package network

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// HexagonDiagonal returns the number of points on the widest row of a
// hexagon with the given rings: 2·rings+1.
func HexagonDiagonal(rings int) int { return 2*rings + 1 }

// HexagonCount returns the point count of a hexagon with the given rings
// from the closed form ((((6·rings+3)/√3)²+1)/4), which equals
// 3·rings²+3·rings+1. The float result is rounded to the nearest integer.
func HexagonCount(rings int) int {
	d := float64(6*rings+3) / math.Sqrt(3)
	return int(math.Round((d*d + 1) / 4))
}

// synthHexagon enumerates the hexagon as described in the file header.
// Complexity: O(number) time and memory.
func synthHexagon(rings int, pitch float64, number int) []r2.Vec {
	diagonal := HexagonDiagonal(rings)
	dy := rowHeight * pitch

	pts := make([]r2.Vec, 0, number)

	// Upper half plus equator, top row first.
	for i := rings; i >= 0; i-- {
		y := dy * float64(i)
		for _, x := range centeredSpan(diagonal-i, pitch) {
			pts = append(pts, r2.Vec{X: x, Y: y})
		}
	}

	// Lower half: π-rotated prefix in reverse order. Rotation by π is the
	// point reflection p → −p, applied exactly.
	upper := (number-1)/2 - rings
	for k := upper - 1; k >= 0; k-- {
		pts = append(pts, r2.Scale(-1, pts[k]))
	}
	return pts
}
