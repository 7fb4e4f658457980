// SPDX-License-Identifier: MIT

// Command latticegen generates lattice point sets and writes them as CSV
// or JSON, optionally rendering a scatter plot of each lattice.
//
// Usage:
//
//	latticegen -kind hexagon -rings 3 -pitch 1.5e-3 -angle 30 -plot hex.png
//	latticegen -config lattices.yaml -format json -out points.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jysru/coherent-beams/config"
	"github.com/jysru/coherent-beams/network"
	"github.com/jysru/coherent-beams/plotting"
)

// errUsage reports invalid flag combinations.
var errUsage = errors.New("invalid usage")

type options struct {
	configPath string
	kind       string
	number     int
	size       int
	rows       int
	cols       int
	rings      int
	pitch      float64
	cx, cy     float64
	angleDeg   float64
	format     string
	out        string
	plotPath   string
	verbose    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("latticegen: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

// run parses args, generates the requested lattices and writes them to
// stdout unless -out is given.
func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	specs, err := loadSpecs(opts)
	if err != nil {
		return err
	}

	sets := make([]*network.PointSet, 0, len(specs))
	for i, s := range specs {
		ps, err := network.Generate(s)
		if err != nil {
			return fmt.Errorf("lattice %d: %w", i, err)
		}
		if opts.verbose {
			b := ps.Bounds()
			log.Printf("lattice %d: %v, bounds x=[%g,%g] y=[%g,%g]", i, ps, b.Min.X, b.Max.X, b.Min.Y, b.Max.Y)
		}
		sets = append(sets, ps)
	}

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch opts.format {
	case "csv":
		err = writeCSV(w, sets)
	case "json":
		err = writeJSON(w, sets)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", opts.format, err)
	}
	if opts.out != "" && opts.verbose {
		log.Printf("wrote %d lattices to %s", len(sets), opts.out)
	}

	if opts.plotPath != "" {
		for i, ps := range sets {
			path := plotPathFor(opts.plotPath, i, len(sets))
			if err := plotting.Save(ps, path); err != nil {
				return err
			}
			if opts.verbose {
				log.Printf("plotted lattice %d to %s", i, path)
			}
		}
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("latticegen", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML file describing one or more lattices")
	fs.StringVar(&o.kind, "kind", "", "lattice kind: line, square, rectangle, triangle, hexagon")
	fs.IntVar(&o.number, "number", 0, "point count (line)")
	fs.IntVar(&o.size, "size", 0, "points per side (square) or rows (triangle)")
	fs.IntVar(&o.rows, "rows", 0, "rows (rectangle)")
	fs.IntVar(&o.cols, "cols", 0, "columns (rectangle)")
	fs.IntVar(&o.rings, "rings", 0, "rings around the center point (hexagon)")
	fs.Float64Var(&o.pitch, "pitch", 1, "center-to-center spacing")
	fs.Float64Var(&o.cx, "cx", 0, "center x offset")
	fs.Float64Var(&o.cy, "cy", 0, "center y offset")
	fs.Float64Var(&o.angleDeg, "angle", 0, "rotation about the origin, in degrees")
	fs.StringVar(&o.format, "format", "csv", "output format: csv or json")
	fs.StringVar(&o.out, "out", "", "output file (default stdout)")
	fs.StringVar(&o.plotPath, "plot", "", "scatter plot image path (.png, .svg, .pdf)")
	fs.BoolVar(&o.verbose, "v", false, "log a summary of each lattice")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments %q: %w", fs.Args(), errUsage)
	}
	if (o.configPath == "") == (o.kind == "") {
		return o, fmt.Errorf("exactly one of -config or -kind is required: %w", errUsage)
	}
	if o.format != "csv" && o.format != "json" {
		return o, fmt.Errorf("-format %q: %w", o.format, errUsage)
	}
	return o, nil
}

func loadSpecs(o options) ([]network.Spec, error) {
	if o.configPath != "" {
		f, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		return f.Specs()
	}

	kind, err := network.ParseKind(o.kind)
	if err != nil {
		return nil, err
	}
	spec := network.Spec{
		Kind:   kind,
		Pitch:  o.pitch,
		Number: o.number,
		Size:   o.size,
		Rows:   o.rows,
		Cols:   o.cols,
		Rings:  o.rings,
	}
	spec.Center.X, spec.Center.Y = o.cx, o.cy
	spec.Angle = o.angleDeg * math.Pi / 180
	return []network.Spec{spec}, nil
}

func writeCSV(w io.Writer, sets []*network.PointSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lattice", "kind", "index", "x", "y"}); err != nil {
		return err
	}
	for li, ps := range sets {
		kind := ps.Kind().String()
		for i := 0; i < ps.Len(); i++ {
			p := ps.At(i)
			rec := []string{
				strconv.Itoa(li),
				kind,
				strconv.Itoa(i),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonLattice struct {
	Kind   string       `json:"kind"`
	Number int          `json:"number"`
	Pitch  float64      `json:"pitch"`
	Center [2]float64   `json:"center"`
	Angle  float64      `json:"angle"`
	Points [][2]float64 `json:"points"`
}

func writeJSON(w io.Writer, sets []*network.PointSet) error {
	out := make([]jsonLattice, len(sets))
	for i, ps := range sets {
		c := ps.Center()
		jl := jsonLattice{
			Kind:   ps.Kind().String(),
			Number: ps.Number(),
			Pitch:  ps.Pitch(),
			Center: [2]float64{c.X, c.Y},
			Angle:  ps.Angle(),
			Points: make([][2]float64, ps.Len()),
		}
		for j := range jl.Points {
			p := ps.At(j)
			jl.Points[j] = [2]float64{p.X, p.Y}
		}
		out[i] = jl
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// plotPathFor suffixes the plot path with the lattice index when more than
// one lattice is rendered: hex.png → hex-0.png, hex-1.png, ...
func plotPathFor(path string, i, n int) string {
	if n == 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i, ext)
}
