// SPDX-License-Identifier: MIT

// Package config reads lattice descriptions from YAML and converts them
// into network.Spec values.
//
// Example document:
//
//	lattices:
//	  - name: main-array
//	    kind: hexagon
//	    rings: 2
//	    pitch: 1.5e-3
//	    center: [0, 0]
//	    angle_deg: 30
//	  - kind: line
//	    number: 8
//	    pitch: 2e-3
//
// Counts are read as numbers and must be integral; "size: 2.5" is rejected
// with network.ErrInvalidShape. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/jysru/coherent-beams/network"
)

var (
	// ErrEmpty indicates a document without any lattice.
	ErrEmpty = errors.New("config: no lattices defined")
	// ErrMissingField indicates a required key is absent for the lattice kind.
	ErrMissingField = errors.New("config: missing required field")
	// ErrBadCenter indicates a center that is not an [x, y] pair.
	ErrBadCenter = errors.New("config: center must be [x, y]")
	// ErrConflictingAngle indicates both angle and angle_deg were set.
	ErrConflictingAngle = errors.New("config: angle and angle_deg are mutually exclusive")
)

// File is the top-level YAML document.
type File struct {
	Lattices []Lattice `yaml:"lattices"`
}

// Lattice is one YAML lattice entry. Count fields are pointers so a
// missing key is distinguishable from zero.
type Lattice struct {
	Name     string    `yaml:"name,omitempty"`
	Kind     string    `yaml:"kind"`
	Pitch    float64   `yaml:"pitch"`
	Number   *float64  `yaml:"number,omitempty"`
	Size     *float64  `yaml:"size,omitempty"`
	Rows     *float64  `yaml:"rows,omitempty"`
	Cols     *float64  `yaml:"cols,omitempty"`
	Rings    *float64  `yaml:"rings,omitempty"`
	Center   []float64 `yaml:"center,omitempty"`
	Angle    *float64  `yaml:"angle,omitempty"`
	AngleDeg *float64  `yaml:"angle_deg,omitempty"`
}

// Decode parses a YAML document from r.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: %w", ErrEmpty)
		}
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if len(f.Lattices) == 0 {
		return nil, fmt.Errorf("Decode: %w", ErrEmpty)
	}
	return &f, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return f, nil
}

// Specs converts every lattice entry, stopping at the first invalid one.
func (f *File) Specs() ([]network.Spec, error) {
	specs := make([]network.Spec, 0, len(f.Lattices))
	for i, l := range f.Lattices {
		s, err := l.Spec()
		if err != nil {
			return nil, fmt.Errorf("lattice %d (%s): %w", i, l.label(), err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Spec converts the entry into a network.Spec. Only the count fields the
// kind reads are required; range checks are left to network.Generate.
func (l Lattice) Spec() (network.Spec, error) {
	kind, err := network.ParseKind(l.Kind)
	if err != nil {
		return network.Spec{}, err
	}
	s := network.Spec{Kind: kind, Pitch: l.Pitch}

	switch kind {
	case network.KindLine:
		s.Number, err = count("number", l.Number)
	case network.KindSquare, network.KindTriangle:
		s.Size, err = count("size", l.Size)
	case network.KindRectangle:
		if s.Rows, err = count("rows", l.Rows); err == nil {
			s.Cols, err = count("cols", l.Cols)
		}
	case network.KindHexagon:
		s.Rings, err = count("rings", l.Rings)
	}
	if err != nil {
		return network.Spec{}, err
	}

	switch len(l.Center) {
	case 0:
	case 2:
		s.Center = r2.Vec{X: l.Center[0], Y: l.Center[1]}
	default:
		return network.Spec{}, fmt.Errorf("center has %d values: %w", len(l.Center), ErrBadCenter)
	}

	switch {
	case l.Angle != nil && l.AngleDeg != nil:
		return network.Spec{}, ErrConflictingAngle
	case l.Angle != nil:
		s.Angle = *l.Angle
	case l.AngleDeg != nil:
		s.Angle = *l.AngleDeg * math.Pi / 180
	}
	return s, nil
}

func (l Lattice) label() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Kind
}

func count(name string, v *float64) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%s: %w", name, ErrMissingField)
	}
	return network.IntegralCount(name, *v)
}
