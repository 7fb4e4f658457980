// SPDX-License-Identifier: MIT

package physics_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jysru/coherent-beams/physics"
)

// TestWavelength_Conversions checks every formula at 600 nm.
func TestWavelength_Conversions(t *testing.T) {
	w, err := physics.New(600e-9)
	require.NoError(t, err)

	f := 3e8 / 600e-9
	assert.InEpsilon(t, f, w.Frequency(), 1e-12)
	assert.InEpsilon(t, 2*math.Pi*f, w.Pulsation(), 1e-12)
	assert.InEpsilon(t, 1/f, w.Period(), 1e-12)
	assert.InEpsilon(t, 2*math.Pi/600e-9, w.Wavenumber(), 1e-12)
	assert.InEpsilon(t, 1/600e-9, w.SpatialFrequency(), 1e-12)
}

// TestWavelength_Default checks the 980 nm default.
func TestWavelength_Default(t *testing.T) {
	w := physics.Default()
	assert.Equal(t, 980e-9, w.Meters)
	assert.InEpsilon(t, 306.122, w.Frequency()*1e-12, 1e-5)
}

// TestNew_Invalid covers rejected wavelengths.
func TestNew_Invalid(t *testing.T) {
	for _, m := range []float64{0, -1e-9, math.NaN(), math.Inf(1)} {
		_, err := physics.New(m)
		assert.ErrorIs(t, err, physics.ErrInvalidWavelength, "m=%g", m)
	}
}

// TestWavelength_String checks the lab-unit summary.
func TestWavelength_String(t *testing.T) {
	s := physics.Default().String()
	assert.True(t, strings.HasPrefix(s, "Wavelength: 980.000 [nm]"), s)
	assert.Contains(t, s, "Frequency: 306.122 [THz]")
	assert.Contains(t, s, "Period: 3.267 [fs]")
}
