// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/jysru/coherent-beams/grid"
)

// TestAxis_Basics checks coordinates and derived properties.
func TestAxis_Basics(t *testing.T) {
	a, err := grid.NewAxis(5, -1, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, a.Coords())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Indexes())
	assert.Equal(t, 0.0, a.Center())
	assert.Equal(t, 2.0, a.Span())
	assert.Equal(t, 0.5, a.Step())
}

// TestAxis_SinglePoint checks the one-point case holds Start.
func TestAxis_SinglePoint(t *testing.T) {
	a, err := grid.NewAxis(1, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, a.Coords())
	assert.Equal(t, 0.0, a.Step())
}

// TestAxis_Errors covers invalid sizes and bounds.
func TestAxis_Errors(t *testing.T) {
	_, err := grid.NewAxis(0, 0, 1)
	assert.ErrorIs(t, err, grid.ErrBadSize)
	_, err = grid.NewAxis(3, math.NaN(), 1)
	assert.ErrorIs(t, err, grid.ErrBadExtent)
	_, err = grid.NewAxis(3, 0, math.Inf(1))
	assert.ErrorIs(t, err, grid.ErrBadExtent)
}

// TestDefaultAxis checks the 101-point [-1,1] default.
func TestDefaultAxis(t *testing.T) {
	a := grid.DefaultAxis()
	assert.Equal(t, 101, a.Size)
	assert.InDelta(t, 0.02, a.Step(), 1e-15)
}

// TestNew_Broadcast checks truncation, padding and defaults.
func TestNew_Broadcast(t *testing.T) {
	g, err := grid.New(3, []int{4}, []grid.Extent{{0, 1}, {-2, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4}, g.Sizes())
	assert.Equal(t, []float64{0, -2, -2}, g.Starts())
	assert.Equal(t, []float64{1, 2, 2}, g.Stops())
	assert.Equal(t, 64, g.Points())

	g, err = grid.New(1, []int{2, 9, 9}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, g.Sizes())
	assert.Equal(t, []float64{-1}, g.Starts())

	g, err = grid.New(2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{101, 101}, g.Sizes())
	assert.Equal(t, []float64{0, 0}, g.Centers())
}

// TestNew_Errors covers rejected dimensions and axes.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New(0, nil, nil)
	assert.ErrorIs(t, err, grid.ErrBadDimension)
	_, err = grid.New(2, []int{3, 0}, nil)
	assert.ErrorIs(t, err, grid.ErrBadSize)
}

// TestMesh2D_XYIndexing compares against numpy.meshgrid([0,1,2], [10,20]).
func TestMesh2D_XYIndexing(t *testing.T) {
	g, err := grid.New(2, []int{3, 2}, []grid.Extent{{0, 2}, {10, 20}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, g.MeshShape())

	x, y, err := g.Mesh2D()
	require.NoError(t, err)

	wantX := mat.NewDense(2, 3, []float64{0, 1, 2, 0, 1, 2})
	wantY := mat.NewDense(2, 3, []float64{10, 10, 10, 20, 20, 20})
	assert.True(t, mat.Equal(wantX, x), "x mesh:\n%v", mat.Formatted(x))
	assert.True(t, mat.Equal(wantY, y), "y mesh:\n%v", mat.Formatted(y))
}

// TestMesh_ThreeD spot-checks an element of a 3-D "xy" mesh.
func TestMesh_ThreeD(t *testing.T) {
	g, err := grid.New(3, []int{2, 3, 4}, []grid.Extent{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(t, err)

	shape := g.MeshShape()
	require.Equal(t, []int{3, 2, 4}, shape)

	mesh := g.Mesh()
	require.Len(t, mesh, 3)
	// node (i=2, j=1, k=3) in mesh order: y index 2, x index 1, z index 3.
	flat := (2*shape[1]+1)*shape[2] + 3
	assert.Equal(t, 1.0, mesh[0][flat]) // x[1]
	assert.Equal(t, 2.0, mesh[1][flat]) // y[2]
	assert.Equal(t, 3.0, mesh[2][flat]) // z[3]
}

// TestMesh2D_WrongDimension checks the 2-D guard.
func TestMesh2D_WrongDimension(t *testing.T) {
	g, err := grid.New(3, []int{2}, nil)
	require.NoError(t, err)
	_, _, err = g.Mesh2D()
	assert.ErrorIs(t, err, grid.ErrBadDimension)
}
