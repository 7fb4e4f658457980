// SPDX-License-Identifier: MIT

// Package grid builds rectilinear sampling grids: a 1-D Axis of evenly
// spaced coordinates, and an N-D Grid composed of one Axis per dimension
// with numpy-style "xy" meshgrid output.
//
// What:
//
//   - Axis: Size points from Start to Stop inclusive (linspace semantics).
//   - Grid: Dimension axes built from per-axis sizes and extents. Inputs
//     shorter than Dimension are padded with their last element, longer
//     ones truncated, empty ones replaced by the defaults (101 points over
//     [-1, 1]).
//   - Mesh: per-axis coordinate arrays over the full grid. The first two
//     mesh dimensions are swapped ("xy" indexing), so for 2-D grids the
//     arrays have shape (len(y), len(x)) as image rows × columns.
//
// Errors:
//
//   - ErrBadDimension: dimension < 1, or Mesh2D on a non-2-D grid.
//   - ErrBadSize:      an axis size < 1.
//   - ErrBadExtent:    a non-finite axis bound.
//
// Complexity:
//
//   - NewAxis / Coords: O(Size).
//   - Mesh: O(Dimension · Points) time and memory.
package grid
