// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Extent is the [start, stop] pair of one axis.
type Extent [2]float64

// Grid is an N-D rectilinear grid, one Axis per dimension.
// It is immutable once built.
type Grid struct {
	Dimension int
	Axes      []*Axis
}

// New builds a Grid of the given dimension. sizes and extents are
// broadcast to dimension entries: longer inputs are truncated, shorter
// ones padded with their last element, and empty ones replaced by
// DefaultSize and [DefaultStart, DefaultStop].
//
// Errors: ErrBadDimension, ErrBadSize, ErrBadExtent.
// Complexity: O(Σ sizes).
func New(dimension int, sizes []int, extents []Extent) (*Grid, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("New: dimension=%d: %w", dimension, ErrBadDimension)
	}
	if len(sizes) == 0 {
		sizes = []int{DefaultSize}
	}
	if len(extents) == 0 {
		extents = []Extent{{DefaultStart, DefaultStop}}
	}
	sizes = broadcast(sizes, dimension)
	extents = broadcast(extents, dimension)

	axes := make([]*Axis, dimension)
	for i := range axes {
		a, err := NewAxis(sizes[i], extents[i][0], extents[i][1])
		if err != nil {
			return nil, fmt.Errorf("New: axis %d: %w", i, err)
		}
		axes[i] = a
	}
	return &Grid{Dimension: dimension, Axes: axes}, nil
}

// broadcast truncates or pads (with the last element) in to n entries.
// in must not be empty.
func broadcast[T any](in []T, n int) []T {
	out := make([]T, n)
	for i := range out {
		if i < len(in) {
			out[i] = in[i]
		} else {
			out[i] = in[len(in)-1]
		}
	}
	return out
}

// Points returns the total number of grid nodes, the product of sizes.
func (g *Grid) Points() int {
	n := 1
	for _, a := range g.Axes {
		n *= a.Size
	}
	return n
}

// Sizes returns the per-axis point counts.
func (g *Grid) Sizes() []int { return collect(g, func(a *Axis) int { return a.Size }) }

// Centers returns the per-axis midpoints.
func (g *Grid) Centers() []float64 { return collect(g, (*Axis).Center) }

// Spans returns the per-axis spans.
func (g *Grid) Spans() []float64 { return collect(g, (*Axis).Span) }

// Steps returns the per-axis spacings.
func (g *Grid) Steps() []float64 { return collect(g, (*Axis).Step) }

// Starts returns the per-axis lower bounds.
func (g *Grid) Starts() []float64 { return collect(g, func(a *Axis) float64 { return a.Start }) }

// Stops returns the per-axis upper bounds.
func (g *Grid) Stops() []float64 { return collect(g, func(a *Axis) float64 { return a.Stop }) }

func collect[T any](g *Grid, fn func(*Axis) T) []T {
	out := make([]T, len(g.Axes))
	for i, a := range g.Axes {
		out[i] = fn(a)
	}
	return out
}

// MeshShape returns the shape of each Mesh array: the axis sizes with the
// first two swapped ("xy" indexing).
func (g *Grid) MeshShape() []int {
	shape := g.Sizes()
	if len(shape) >= 2 {
		shape[0], shape[1] = shape[1], shape[0]
	}
	return shape
}

// Mesh returns one flat, row-major array per axis holding that axis'
// coordinate at every node of MeshShape(), matching numpy.meshgrid with
// the default "xy" indexing.
// Complexity: O(Dimension · Points) time and memory.
func (g *Grid) Mesh() [][]float64 {
	shape := g.MeshShape()
	total := g.Points()

	// strides[p] is the flat-index stride of mesh dimension p.
	strides := make([]int, len(shape))
	stride := 1
	for p := len(shape) - 1; p >= 0; p-- {
		strides[p] = stride
		stride *= shape[p]
	}

	out := make([][]float64, g.Dimension)
	for axis, a := range g.Axes {
		p := meshPosition(axis, g.Dimension)
		coords := a.coords
		flat := make([]float64, total)
		for i := range flat {
			flat[i] = coords[(i/strides[p])%shape[p]]
		}
		out[axis] = flat
	}
	return out
}

// meshPosition maps an axis to its mesh dimension under "xy" indexing.
func meshPosition(axis, dimension int) int {
	if dimension < 2 {
		return axis
	}
	switch axis {
	case 0:
		return 1
	case 1:
		return 0
	}
	return axis
}

// Mesh2D returns the 2-D meshgrid as two len(y)×len(x) matrices:
// x.At(i, j) is the j-th x coordinate, y.At(i, j) the i-th y coordinate.
// Fails with ErrBadDimension unless Dimension == 2.
func (g *Grid) Mesh2D() (x, y *mat.Dense, err error) {
	if g.Dimension != 2 {
		return nil, nil, fmt.Errorf("Mesh2D: dimension=%d: %w", g.Dimension, ErrBadDimension)
	}
	shape := g.MeshShape()
	mesh := g.Mesh()
	return mat.NewDense(shape[0], shape[1], mesh[0]), mat.NewDense(shape[0], shape[1], mesh[1]), nil
}

// String summarizes the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("%dD Grid: points=%d sizes=%v starts=%v stops=%v spans=%v steps=%v",
		g.Dimension, g.Points(), g.Sizes(), g.Starts(), g.Stops(), g.Spans(), g.Steps())
}
