// SPDX-License-Identifier: MIT
// Package: coherent-beams/network
//
// options.go — functional options for the per-variant constructors.
//
// Contract:
//   • Options mutate the Spec before Generate validates it.
//   • Option constructors PANIC on non-finite input (programmer error);
//     generators themselves never panic and return sentinel errors.
//   • Options apply in order; later ones override earlier ones.

package network

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Option customizes a Spec before generation.
type Option func(*Spec)

// WithCenter sets the offset added to every point after rotation.
// Panics if x or y is NaN or ±Inf.
func WithCenter(x, y float64) Option {
	if !isFinite(x) || !isFinite(y) {
		panic("network: WithCenter(non-finite)")
	}
	return func(s *Spec) {
		s.Center = r2.Vec{X: x, Y: y}
	}
}

// WithAngle sets the rotation about the origin, in radians.
// Panics if rad is NaN or ±Inf.
func WithAngle(rad float64) Option {
	if !isFinite(rad) {
		panic("network: WithAngle(non-finite)")
	}
	return func(s *Spec) {
		s.Angle = rad
	}
}

// WithAngleDegrees is WithAngle with the angle given in degrees.
func WithAngleDegrees(deg float64) Option {
	return WithAngle(deg * math.Pi / 180)
}

func applyOptions(s Spec, opts []Option) Spec {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
