// SPDX-License-Identifier: MIT

package beam_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jysru/coherent-beams/beam"
	"github.com/jysru/coherent-beams/physics"
)

// TestField_IntensityAndPhase checks |E|² and arg(E) per pixel.
func TestField_IntensityAndPhase(t *testing.T) {
	f, err := beam.NewField(2, 3, physics.Default())
	require.NoError(t, err)

	f.Set(0, 1, complex(3, 4))
	f.Set(1, 2, complex(0, -2))

	in := f.Intensity()
	assert.InDelta(t, 25, in.At(0, 1), 1e-12)
	assert.InDelta(t, 4, in.At(1, 2), 1e-12)
	assert.Equal(t, 0.0, in.At(0, 0))

	ph := f.Phase()
	assert.InDelta(t, math.Atan2(4, 3), ph.At(0, 1), 1e-15)
	assert.InDelta(t, -math.Pi/2, ph.At(1, 2), 1e-15)

	r, c := f.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

// TestNewField_BadSize covers empty fields.
func TestNewField_BadSize(t *testing.T) {
	_, err := beam.NewField(0, 5, physics.Default())
	assert.ErrorIs(t, err, beam.ErrBadSize)
}

// TestBeam_Defaults checks the Gaussian, unit-amplitude default and options.
func TestBeam_Defaults(t *testing.T) {
	b := beam.New(nil)
	assert.Equal(t, beam.Gaussian, b.Shape)
	assert.Equal(t, 1.0, b.Amplitude)
	assert.Equal(t, 0.0, b.Piston)
	r, c := b.Dims()
	assert.Equal(t, beam.DefaultSize, r)
	assert.Equal(t, beam.DefaultSize, c)

	b = beam.New(nil, beam.WithShape(beam.Airy), beam.WithAmplitude(2),
		beam.WithPiston(0.5), beam.WithCenter(r2.Vec{X: 1, Y: -1}))
	assert.Equal(t, "airy", b.Shape.String())
	assert.Equal(t, 2.0, b.Amplitude)
	assert.Equal(t, r2.Vec{X: 1, Y: -1}, b.Center)
	assert.Contains(t, b.String(), "wavelength=980.00 [nm]")
}
