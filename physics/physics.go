// SPDX-License-Identifier: MIT

// Package physics converts an optical wavelength into the related scalar
// quantities used by the beam and field holders.
//
//	frequency        = c / λ
//	pulsation        = 2π · frequency
//	period           = 1 / frequency
//	wavenumber       = 2π / λ
//	spatialFrequency = 1 / λ
package physics

import (
	"errors"
	"fmt"
	"math"
)

// C is the speed of light in vacuum used by every conversion, in m/s.
const C = 3e8

// DefaultWavelength is 980 nm, in meters.
const DefaultWavelength = 980e-9

// ErrInvalidWavelength indicates a wavelength that is not finite and > 0.
var ErrInvalidWavelength = errors.New("physics: wavelength must be finite and > 0")

// Wavelength is a vacuum wavelength in meters.
type Wavelength struct {
	Meters float64
}

// New returns the Wavelength of m meters.
func New(m float64) (Wavelength, error) {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return Wavelength{}, fmt.Errorf("New(%g): %w", m, ErrInvalidWavelength)
	}
	return Wavelength{Meters: m}, nil
}

// Default returns the 980 nm wavelength.
func Default() Wavelength { return Wavelength{Meters: DefaultWavelength} }

// Frequency returns c/λ in Hz.
func (w Wavelength) Frequency() float64 { return C / w.Meters }

// Pulsation returns the angular frequency 2π·f in rad/s.
func (w Wavelength) Pulsation() float64 { return 2 * math.Pi * w.Frequency() }

// Period returns 1/f in seconds.
func (w Wavelength) Period() float64 { return 1 / w.Frequency() }

// Wavenumber returns 2π/λ in rad/m.
func (w Wavelength) Wavenumber() float64 { return 2 * math.Pi / w.Meters }

// SpatialFrequency returns 1/λ in 1/m.
func (w Wavelength) SpatialFrequency() float64 { return 1 / w.Meters }

// String reports the wavelength and its derived quantities in lab units.
func (w Wavelength) String() string {
	return fmt.Sprintf("Wavelength: %.3f [nm]\n"+
		"  - Wavenumber: %.3f [rad/cm]\n"+
		"  - Spatial frequency: %.3f [1/cm]\n"+
		"  - Frequency: %.3f [THz]\n"+
		"  - Pulsation: %.3f [rad/fs]\n"+
		"  - Period: %.3f [fs]",
		w.Meters*1e9,
		w.Wavenumber()/1e2,
		w.SpatialFrequency()/1e2,
		w.Frequency()*1e-12,
		w.Pulsation()/1e15,
		w.Period()*1e15,
	)
}
