// SPDX-License-Identifier: MIT

package network

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rotate returns a new slice holding every point rotated about the origin
// by angle radians:
//
//	x' = x·cos(θ) − y·sin(θ)
//	y' = x·sin(θ) + y·cos(θ)
//
// An angle of exactly 0 returns a bit-identical copy. The input is never
// modified. Rotation preserves the norm of each point up to rounding.
// Complexity: O(N) time and memory.
func Rotate(points []r2.Vec, angle float64) []r2.Vec {
	out := make([]r2.Vec, len(points))
	if angle == 0 {
		copy(out, points)
		return out
	}
	sin, cos := math.Sincos(angle)
	for i, p := range points {
		out[i] = r2.Vec{
			X: p.X*cos - p.Y*sin,
			Y: p.X*sin + p.Y*cos,
		}
	}
	return out
}

// Translate returns a new slice holding every point shifted by offset.
// The input is never modified.
// Complexity: O(N) time and memory.
func Translate(points []r2.Vec, offset r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		out[i] = r2.Add(p, offset)
	}
	return out
}

// centeredSpan returns n values spaced by pitch and centered on 0:
// -((n-1)·pitch)/2 … +((n-1)·pitch)/2. A single value is exactly 0.
func centeredSpan(n int, pitch float64) []float64 {
	if n == 1 {
		return []float64{0}
	}
	half := float64(n-1) * pitch / 2
	return floats.Span(make([]float64, n), -half, half)
}
