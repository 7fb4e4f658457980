// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrBadDimension indicates a dimension < 1 or a 2-D-only call on
	// another dimension.
	ErrBadDimension = errors.New("grid: invalid dimension")
	// ErrBadSize indicates an axis with fewer than one point.
	ErrBadSize = errors.New("grid: axis size must be ≥ 1")
	// ErrBadExtent indicates a NaN or infinite axis bound.
	ErrBadExtent = errors.New("grid: axis bounds must be finite")
)
