// SPDX-License-Identifier: MIT

// Package beam holds optical field data: a complex-valued 2-D array
// sampled at a given wavelength (Field), and a Beam descriptor layering a
// shape, amplitude, piston and center on top of a Field.
//
// The package is a data holder. It does not synthesize beam profiles or
// propagate fields.
package beam

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jysru/coherent-beams/physics"
)

// DefaultSize is the default number of pixels per side of a Field.
const DefaultSize = 100

// ErrBadSize indicates a Field with fewer than one pixel per side.
var ErrBadSize = errors.New("beam: field size must be ≥ 1×1")

// Field is a complex 2-D optical field sampled at one wavelength.
type Field struct {
	Wavelength physics.Wavelength
	data       *mat.CDense
}

// NewField returns a rows×cols zero field at wavelength w.
func NewField(rows, cols int, w physics.Wavelength) (*Field, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewField(%d,%d): %w", rows, cols, ErrBadSize)
	}
	return &Field{
		Wavelength: w,
		data:       mat.NewCDense(rows, cols, nil),
	}, nil
}

// DefaultField returns a DefaultSize×DefaultSize zero field at 980 nm.
func DefaultField() *Field {
	f, _ := NewField(DefaultSize, DefaultSize, physics.Default())
	return f
}

// Dims returns the number of rows and columns.
func (f *Field) Dims() (rows, cols int) { return f.data.Dims() }

// At returns the complex amplitude at (i, j).
func (f *Field) At(i, j int) complex128 { return f.data.At(i, j) }

// Set stores the complex amplitude v at (i, j).
func (f *Field) Set(i, j int, v complex128) { f.data.Set(i, j, v) }

// Intensity returns |E|² per pixel.
func (f *Field) Intensity() *mat.Dense {
	return f.apply(func(v complex128) float64 {
		a := cmplx.Abs(v)
		return a * a
	})
}

// Phase returns arg(E) per pixel, in (−π, π].
func (f *Field) Phase() *mat.Dense {
	return f.apply(cmplx.Phase)
}

func (f *Field) apply(fn func(complex128) float64) *mat.Dense {
	r, c := f.data.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, fn(f.data.At(i, j)))
		}
	}
	return out
}

// String summarizes the field.
func (f *Field) String() string {
	r, c := f.Dims()
	return fmt.Sprintf("Field: wavelength=%.2f [nm] size=%d x %d px", f.Wavelength.Meters*1e9, r, c)
}

// Shape names a transverse beam profile.
type Shape int

const (
	// TopHat is a uniform disk.
	TopHat Shape = iota
	// Gaussian is a TEM00 Gaussian.
	Gaussian
	// Airy is the far field of a uniform circular aperture.
	Airy
	// LP is a linearly polarized fiber mode.
	LP
	// LG is a Laguerre–Gauss mode.
	LG
)

var shapeNames = [...]string{"top-hat", "gaussian", "airy", "lp", "lg"}

// String returns the lowercase profile name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Beam describes one beam: its profile, scalar amplitude, piston phase and
// transverse center, over a Field.
type Beam struct {
	*Field
	Shape     Shape
	Amplitude float64
	Piston    float64
	Center    r2.Vec
}

// Option customizes a Beam.
type Option func(*Beam)

// WithShape sets the transverse profile.
func WithShape(s Shape) Option { return func(b *Beam) { b.Shape = s } }

// WithAmplitude sets the scalar amplitude.
func WithAmplitude(a float64) Option { return func(b *Beam) { b.Amplitude = a } }

// WithPiston sets the piston phase in radians.
func WithPiston(p float64) Option { return func(b *Beam) { b.Piston = p } }

// WithCenter sets the transverse center, e.g. a lattice site.
func WithCenter(c r2.Vec) Option { return func(b *Beam) { b.Center = c } }

// New returns a Gaussian beam of unit amplitude and zero piston centered
// on the origin of f, then applies opts. A nil field uses DefaultField.
func New(f *Field, opts ...Option) *Beam {
	if f == nil {
		f = DefaultField()
	}
	b := &Beam{Field: f, Shape: Gaussian, Amplitude: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// String summarizes the beam.
func (b *Beam) String() string {
	return fmt.Sprintf("Beam: %s amplitude=%g piston=%g center=(%g,%g); %s",
		b.Shape, b.Amplitude, b.Piston, b.Center.X, b.Center.Y, b.Field)
}
