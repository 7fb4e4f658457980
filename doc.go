// SPDX-License-Identifier: MIT

// Package coherentbeams is a toolkit for laying out coherent beam arrays:
// it generates 2-D emitter lattices and carries the small optical helpers
// that go with them.
//
// Everything is organized under focused subpackages:
//
//	network/        Line, Square, Rectangle, Triangle and Hexagon lattices,
//	                shared rotate → translate pipeline, sentinel errors
//	physics/        wavelength → frequency, pulsation, period, wavenumber
//	grid/           1-D axes and N-D rectilinear grids with meshgrid output
//	beam/           complex field holder (intensity, phase) and beam descriptor
//	plotting/       scatter rendering of lattices with gonum/plot
//	config/         YAML lattice descriptions
//	cmd/latticegen/ command-line generator (CSV / JSON / images)
//
// Quick ASCII example, Hexagon(1, pitch):
//
//	   o   o
//	 o   o   o
//	   o   o
//
// seven emitters: one center point and a first ring of six.
//
//	go get github.com/jysru/coherent-beams/network
package coherentbeams
