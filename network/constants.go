// SPDX-License-Identifier: MIT

package network

import "math"

//-----------------------------------------------------------------------------
// Method name constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name of the shared pipeline.
	MethodGenerate = "Generate"
	// MethodLine is the canonical name for the Line generator.
	MethodLine = "Line"
	// MethodSquare is the canonical name for the Square generator.
	MethodSquare = "Square"
	// MethodRectangle is the canonical name for the Rectangle generator.
	MethodRectangle = "Rectangle"
	// MethodTriangle is the canonical name for the Triangle generator.
	MethodTriangle = "Triangle"
	// MethodHexagon is the canonical name for the Hexagon generator.
	MethodHexagon = "Hexagon"
	// MethodParseKind is the canonical name for ParseKind.
	MethodParseKind = "ParseKind"
	// MethodIntegralCount is the canonical name for IntegralCount.
	MethodIntegralCount = "IntegralCount"
)

//-----------------------------------------------------------------------------
// Minimum shape parameters
//-----------------------------------------------------------------------------

// MinLineNumber is the smallest point count of a Line.
const MinLineNumber = 1

// MinSquareSize is the smallest side length (in points) of a Square.
const MinSquareSize = 1

// MinRectangleDim is the smallest rows or cols value of a Rectangle.
const MinRectangleDim = 1

// MinTriangleSize is the smallest row count of a Triangle.
const MinTriangleSize = 1

// MinHexagonRings is the smallest ring count of a Hexagon.
// Zero rings is the center-only hexagon.
const MinHexagonRings = 0

// maxCount bounds counts converted from untyped sources (YAML, flags).
const maxCount = math.MaxInt32

// rowHeight is the vertical distance between adjacent rows of a triangular
// or hexagonal lattice, per unit pitch.
var rowHeight = math.Sqrt(3) / 2
