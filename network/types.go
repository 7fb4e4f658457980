// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind identifies which lattice variant produced a PointSet. It labels and
// dispatches; once a PointSet exists its behavior never branches on Kind.
type Kind int

const (
	// KindLine is a single row of points along the x-axis.
	KindLine Kind = iota
	// KindSquare is a size×size grid.
	KindSquare
	// KindRectangle is a rows×cols grid.
	KindRectangle
	// KindTriangle is an equilateral-triangle arrangement of rows.
	KindTriangle
	// KindHexagon is a hexagonal arrangement of concentric rings.
	KindHexagon
)

var kindNames = [...]string{
	KindLine:      "line",
	KindSquare:    "square",
	KindRectangle: "rectangle",
	KindTriangle:  "triangle",
	KindHexagon:   "hexagon",
}

// Kinds returns every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLine, KindSquare, KindRectangle, KindTriangle, KindHexagon}
}

// String returns the lowercase name of k ("line", "hexagon", ...).
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= KindLine && int(k) < len(kindNames)
}

// ParseKind maps a case-insensitive lattice name back to its Kind.
// Unknown names fail with ErrUnsupportedVariant.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%s: %q: %w", MethodParseKind, name, ErrUnsupportedVariant)
}

// Spec is the tagged description of a lattice: a Kind plus the parameters
// that Kind reads. Fields a Kind does not use are ignored.
//
// Fields:
//   - Kind:   which variant to synthesize.
//   - Pitch:  center-to-center spacing, finite and > 0.
//   - Number: point count (Line).
//   - Size:   points per side (Square) or row count (Triangle).
//   - Rows, Cols: grid extents (Rectangle).
//   - Rings:  concentric ring count, 0 = center only (Hexagon).
//   - Center: offset added after rotation; zero value is the origin.
//   - Angle:  rotation about the origin in radians; 0 skips rotation.
type Spec struct {
	Kind   Kind
	Pitch  float64
	Number int
	Size   int
	Rows   int
	Cols   int
	Rings  int
	Center r2.Vec
	Angle  float64
}

// PointSet is the immutable result of Generate: an ordered sequence of
// points plus the Spec that produced them. The set owns its coordinate
// buffer exclusively; accessors never expose it for mutation.
type PointSet struct {
	spec   Spec     // normalized input parameters
	number int      // analytic count, equal to len(points)
	points []r2.Vec // final coordinates, generation order
}

// Kind returns the lattice variant of the set.
func (ps *PointSet) Kind() Kind { return ps.spec.Kind }

// Spec returns a copy of the parameters the set was generated from.
func (ps *PointSet) Spec() Spec { return ps.spec }

// Number returns the analytic point count of the variant.
func (ps *PointSet) Number() int { return ps.number }

// Len returns the number of points held. It always equals Number.
func (ps *PointSet) Len() int { return len(ps.points) }

// Pitch returns the center-to-center spacing.
func (ps *PointSet) Pitch() float64 { return ps.spec.Pitch }

// Center returns the translation applied after rotation.
func (ps *PointSet) Center() r2.Vec { return ps.spec.Center }

// Angle returns the rotation angle in radians.
func (ps *PointSet) Angle() float64 { return ps.spec.Angle }

// At returns the i-th point in generation order. It panics if i is out of
// range, like a slice index.
func (ps *PointSet) At(i int) r2.Vec { return ps.points[i] }

// Points returns a copy of all points in generation order.
// Complexity: O(N) time and memory.
func (ps *PointSet) Points() []r2.Vec {
	out := make([]r2.Vec, len(ps.points))
	copy(out, ps.points)
	return out
}

// Bounds returns the axis-aligned bounding box of the points.
// Complexity: O(N).
func (ps *PointSet) Bounds() r2.Box {
	b := r2.Box{Min: ps.points[0], Max: ps.points[0]}
	for _, p := range ps.points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// String summarizes the set, e.g. "hexagon[7 points, pitch=1]".
func (ps *PointSet) String() string {
	return fmt.Sprintf("%s[%d points, pitch=%g]", ps.spec.Kind, ps.number, ps.spec.Pitch)
}
