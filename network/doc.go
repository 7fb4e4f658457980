// SPDX-License-Identifier: MIT

// Package network generates 2-D point lattices ("networks") used as spatial
// layouts for emitter and sensor arrays in optical simulations.
//
// What:
//
//   - Five lattice variants: Line, Square, Rectangle, Triangle, Hexagon.
//   - Every variant is described by a Spec (Kind tag + shape parameters +
//     pitch + center + angle) and built by the single Generate pipeline.
//   - Pipeline stages, always in this order:
//     1. synthesis in the canonical frame (origin-centered, variant specific);
//     2. rotation about the origin by Spec.Angle (skipped when exactly 0);
//     3. translation by Spec.Center (always applied).
//   - The result is an immutable PointSet whose length always equals the
//     analytic count of the variant.
//
// Counts:
//
//   - Line:      number
//   - Square:    size²
//   - Rectangle: rows·cols
//   - Triangle:  size·(size+1)/2
//   - Hexagon:   ((6·rings+3)/√3)²+1)/4 = 3·rings²+3·rings+1
//
// Complexity:
//
//   - Generate: O(N) time and O(N) memory, N = number of points.
//   - Rotate / Translate: O(N), both return fresh slices.
//
// Errors:
//
//   - ErrInvalidShape:       count parameter below its minimum or fractional.
//   - ErrInvalidPitch:       pitch ≤ 0, NaN or ±Inf.
//   - ErrInvalidTransform:   non-finite center or angle.
//   - ErrUnsupportedVariant: Kind without a synthesis step.
//   - ErrCountMismatch:      analytic and synthesized counts differ (a bug).
//
// Example:
//
//	ps, err := network.Hexagon(2, 1.5e-3, network.WithAngleDegrees(30))
//	if err != nil {
//		return err
//	}
//	for i := 0; i < ps.Len(); i++ {
//		p := ps.At(i)
//		fmt.Println(p.X, p.Y)
//	}
package network
