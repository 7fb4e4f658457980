// SPDX-License-Identifier: MIT

// Validation helpers shared by Generate and the count conversions.
// Each returns an error wrapping the matching sentinel, prefixed with the
// calling method.

package network

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// validateCount ensures got ≥ min for the named shape parameter.
// Complexity: O(1).
func validateCount(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, name, got, min, ErrInvalidShape)
	}
	return nil
}

// validatePitch ensures pitch is finite and strictly positive.
// Complexity: O(1).
func validatePitch(method string, pitch float64) error {
	if !isFinite(pitch) || pitch <= 0 {
		return fmt.Errorf("%s: pitch=%g (must be finite and > 0): %w", method, pitch, ErrInvalidPitch)
	}
	return nil
}

// validateTransform ensures the center offset and angle are finite.
// Complexity: O(1).
func validateTransform(method string, center r2.Vec, angle float64) error {
	if !isFinite(center.X) || !isFinite(center.Y) {
		return fmt.Errorf("%s: center=(%g,%g): %w", method, center.X, center.Y, ErrInvalidTransform)
	}
	if !isFinite(angle) {
		return fmt.Errorf("%s: angle=%g: %w", method, angle, ErrInvalidTransform)
	}
	return nil
}

// IntegralCount converts a count read from an untyped source (YAML, JSON,
// command-line floats) into an int. Fractional, negative, NaN, ±Inf and
// out-of-range values fail with ErrInvalidShape. Per-variant minima are
// still enforced later by Generate.
func IntegralCount(name string, v float64) (int, error) {
	if !isFinite(v) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%s: %s=%g (must be an integer): %w", MethodIntegralCount, name, v, ErrInvalidShape)
	}
	if v < 0 || v > maxCount {
		return 0, fmt.Errorf("%s: %s=%g (must be in [0,%d]): %w", MethodIntegralCount, name, v, maxCount, ErrInvalidShape)
	}
	return int(v), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
