// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Defaults applied when no size or extent is supplied.
const (
	DefaultSize  = 101
	DefaultStart = -1.0
	DefaultStop  = 1.0
)

// Axis is a 1-D grid of Size evenly spaced coordinates from Start to Stop,
// both included. It is immutable once built.
type Axis struct {
	Size        int
	Start, Stop float64
	coords      []float64
}

// NewAxis validates the parameters and precomputes the coordinates.
// A single-point axis holds Start.
// Complexity: O(size).
func NewAxis(size int, start, stop float64) (*Axis, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewAxis: size=%d: %w", size, ErrBadSize)
	}
	if !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("NewAxis: [%g,%g]: %w", start, stop, ErrBadExtent)
	}

	coords := make([]float64, size)
	if size == 1 {
		coords[0] = start
	} else {
		floats.Span(coords, start, stop)
	}
	return &Axis{Size: size, Start: start, Stop: stop, coords: coords}, nil
}

// DefaultAxis returns DefaultSize points over [DefaultStart, DefaultStop].
func DefaultAxis() *Axis {
	a, _ := NewAxis(DefaultSize, DefaultStart, DefaultStop)
	return a
}

// Coords returns a copy of the coordinates.
func (a *Axis) Coords() []float64 {
	out := make([]float64, len(a.coords))
	copy(out, a.coords)
	return out
}

// Indexes returns 0, 1, …, Size-1.
func (a *Axis) Indexes() []int {
	idx := make([]int, a.Size)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Center returns the midpoint of the bounds.
func (a *Axis) Center() float64 { return (a.Start + a.Stop) / 2 }

// Span returns |Stop − Start|.
func (a *Axis) Span() float64 { return math.Abs(a.Stop - a.Start) }

// Step returns the spacing between adjacent coordinates; 0 for one point.
func (a *Axis) Step() float64 {
	if a.Size < 2 {
		return 0
	}
	return a.Span() / float64(a.Size-1)
}

// String summarizes the axis.
func (a *Axis) String() string {
	return fmt.Sprintf("1D Grid: points=%d start=%g stop=%g span=%g step=%g",
		a.Size, a.Start, a.Stop, a.Span(), a.Step())
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
