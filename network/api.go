// SPDX-License-Identifier: MIT
// Package: coherent-beams/network
//
// api.go — the shared generation pipeline and thin per-variant entry points.
//
// Design contract (strict):
//   - One orchestrator: Generate(spec). Variants only contribute a count
//     formula and a synthesis step (impl_*.go); rotation and translation are
//     shared and cannot be overridden.
//   - Stage order is fixed: validate → count → synthesize → cross-check →
//     rotate (angle ≠ 0 only) → translate.
//   - All-or-nothing: validation precedes any allocation of coordinates and
//     errors propagate unchanged (wrapped with the method tag).
//   - Determinism: equal Specs ⇒ bit-identical PointSets.

package network

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Generate runs the lattice pipeline for spec and returns the resulting
// PointSet.
//
// Errors (checked in this order):
//   - ErrUnsupportedVariant if spec.Kind has no synthesis step.
//   - ErrInvalidShape if a count parameter is below its minimum.
//   - ErrInvalidPitch if the pitch is not finite and > 0.
//   - ErrInvalidTransform if the center or angle is not finite.
//   - ErrCountMismatch if synthesis disagrees with the analytic count.
//
// Complexity: O(N) time and memory, N = analytic count.
func Generate(spec Spec) (*PointSet, error) {
	// 1) Resolve the variant; unknown tags never reach synthesis.
	if !spec.Kind.valid() {
		return nil, fmt.Errorf("%s: kind %v: %w", MethodGenerate, spec.Kind, ErrUnsupportedVariant)
	}
	method := methodOf(spec.Kind)

	// 2) Analytic count doubles as shape validation.
	number, err := countOf(spec)
	if err != nil {
		return nil, err
	}

	// 3) Remaining scalar validation, still before any allocation.
	if err = validatePitch(method, spec.Pitch); err != nil {
		return nil, err
	}
	if err = validateTransform(method, spec.Center, spec.Angle); err != nil {
		return nil, err
	}

	// 4) Canonical, origin-centered coordinates.
	canonical := synthesize(spec, number)
	if len(canonical) != number {
		return nil, fmt.Errorf("%s: synthesized %d points, want %d: %w",
			method, len(canonical), number, ErrCountMismatch)
	}

	// 5) Shared transforms. Zero angle skips rotation entirely.
	points := canonical
	if spec.Angle != 0 {
		points = Rotate(points, spec.Angle)
	}
	points = Translate(points, spec.Center)

	return &PointSet{spec: spec, number: number, points: points}, nil
}

// Line generates number points along the x-axis spaced by pitch.
func Line(number int, pitch float64, opts ...Option) (*PointSet, error) {
	return Generate(applyOptions(Spec{Kind: KindLine, Number: number, Pitch: pitch}, opts))
}

// Square generates a size×size grid spaced by pitch.
func Square(size int, pitch float64, opts ...Option) (*PointSet, error) {
	return Generate(applyOptions(Spec{Kind: KindSquare, Size: size, Pitch: pitch}, opts))
}

// Rectangle generates a rows×cols grid spaced by pitch on both axes.
func Rectangle(rows, cols int, pitch float64, opts ...Option) (*PointSet, error) {
	return Generate(applyOptions(Spec{Kind: KindRectangle, Rows: rows, Cols: cols, Pitch: pitch}, opts))
}

// Triangle generates an equilateral triangle of size rows spaced by pitch.
func Triangle(size int, pitch float64, opts ...Option) (*PointSet, error) {
	return Generate(applyOptions(Spec{Kind: KindTriangle, Size: size, Pitch: pitch}, opts))
}

// Hexagon generates a hexagonal lattice with the given number of rings
// around a center point, spaced by pitch.
func Hexagon(rings int, pitch float64, opts ...Option) (*PointSet, error) {
	return Generate(applyOptions(Spec{Kind: KindHexagon, Rings: rings, Pitch: pitch}, opts))
}

// countOf validates the shape parameters of spec and returns the analytic
// point count. spec.Kind must be valid.
func countOf(spec Spec) (int, error) {
	switch spec.Kind {
	case KindLine:
		if err := validateCount(MethodLine, "number", spec.Number, MinLineNumber); err != nil {
			return 0, err
		}
		return LineCount(spec.Number), nil
	case KindSquare:
		if err := validateCount(MethodSquare, "size", spec.Size, MinSquareSize); err != nil {
			return 0, err
		}
		return SquareCount(spec.Size), nil
	case KindRectangle:
		if err := validateCount(MethodRectangle, "rows", spec.Rows, MinRectangleDim); err != nil {
			return 0, err
		}
		if err := validateCount(MethodRectangle, "cols", spec.Cols, MinRectangleDim); err != nil {
			return 0, err
		}
		return RectangleCount(spec.Rows, spec.Cols), nil
	case KindTriangle:
		if err := validateCount(MethodTriangle, "size", spec.Size, MinTriangleSize); err != nil {
			return 0, err
		}
		return TriangleCount(spec.Size), nil
	case KindHexagon:
		if err := validateCount(MethodHexagon, "rings", spec.Rings, MinHexagonRings); err != nil {
			return 0, err
		}
		return HexagonCount(spec.Rings), nil
	}
	return 0, fmt.Errorf("%s: kind %v: %w", MethodGenerate, spec.Kind, ErrUnsupportedVariant)
}

// synthesize dispatches to the variant's canonical-frame step.
func synthesize(spec Spec, number int) []r2.Vec {
	switch spec.Kind {
	case KindLine:
		return synthLine(spec.Number, spec.Pitch)
	case KindSquare:
		return synthGrid(spec.Size, spec.Size, spec.Pitch)
	case KindRectangle:
		return synthGrid(spec.Rows, spec.Cols, spec.Pitch)
	case KindTriangle:
		return synthTriangle(spec.Size, spec.Pitch, number)
	case KindHexagon:
		return synthHexagon(spec.Rings, spec.Pitch, number)
	}
	return nil
}

func methodOf(k Kind) string {
	switch k {
	case KindLine:
		return MethodLine
	case KindSquare:
		return MethodSquare
	case KindRectangle:
		return MethodRectangle
	case KindTriangle:
		return MethodTriangle
	case KindHexagon:
		return MethodHexagon
	}
	return MethodGenerate
}
