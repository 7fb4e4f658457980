// SPDX-License-Identifier: MIT
// Package: coherent-beams/network
//
// errors.go — sentinel errors for the network package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context as "<Method>: <detail>: %w".
//   • All validation happens before any coordinate buffer is allocated,
//     so a failed call never yields a partial PointSet.
//   • None of these are retryable: the same input fails the same way.

package network

import "errors"

// ErrInvalidShape indicates a count parameter (number, size, rows, cols,
// rings) below its minimum, or a fractional / non-finite count read from
// an untyped source.
var ErrInvalidShape = errors.New("network: invalid shape parameter")

// ErrInvalidPitch indicates a pitch that is not a finite value > 0.
var ErrInvalidPitch = errors.New("network: invalid pitch")

// ErrInvalidTransform indicates a non-finite center offset or angle.
var ErrInvalidTransform = errors.New("network: invalid transform")

// ErrUnsupportedVariant indicates a lattice Kind with no synthesis step.
var ErrUnsupportedVariant = errors.New("network: unsupported lattice variant")

// ErrCountMismatch indicates the synthesized point count differs from the
// analytic count of the variant. It reports an implementation bug.
var ErrCountMismatch = errors.New("network: point count mismatch")
