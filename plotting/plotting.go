// SPDX-License-Identifier: MIT

// Package plotting renders a network.PointSet as a 2-D scatter plot with
// gonum/plot. The network package never imports it.
package plotting

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jysru/coherent-beams/network"
)

// ErrNilPointSet indicates a nil PointSet was passed for rendering.
var ErrNilPointSet = errors.New("plotting: nil point set")

type config struct {
	title       string
	width       vg.Length
	height      vg.Length
	glyphRadius vg.Length
	glyphColor  color.Color
	equalAspect bool
	xLabel      string
	yLabel      string
}

func defaultConfig() config {
	return config{
		width:       6 * vg.Inch,
		height:      6 * vg.Inch,
		glyphRadius: vg.Points(3),
		glyphColor:  color.RGBA{R: 31, G: 119, B: 180, A: 255},
		equalAspect: true,
		xLabel:      "x",
		yLabel:      "y",
	}
}

// Option customizes rendering.
type Option func(*config)

// WithTitle overrides the default "<kind> (<n> points)" title.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithSize sets the saved image size.
func WithSize(w, h vg.Length) Option {
	return func(c *config) { c.width, c.height = w, h }
}

// WithGlyphRadius sets the marker radius.
func WithGlyphRadius(r vg.Length) Option { return func(c *config) { c.glyphRadius = r } }

// WithColor sets the marker color.
func WithColor(col color.Color) Option { return func(c *config) { c.glyphColor = col } }

// WithAxisLabels sets the x and y axis labels.
func WithAxisLabels(x, y string) Option {
	return func(c *config) { c.xLabel, c.yLabel = x, y }
}

// WithFreeAspect lets each axis fit its own data range instead of sharing
// a common span.
func WithFreeAspect() Option { return func(c *config) { c.equalAspect = false } }

// XYs adapts the points of ps, in generation order, to plotter.XYs.
func XYs(ps *network.PointSet) plotter.XYs {
	xys := make(plotter.XYs, ps.Len())
	for i := range xys {
		p := ps.At(i)
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

// Scatter builds a scatter plot of ps.
func Scatter(ps *network.PointSet, opts ...Option) (*plot.Plot, error) {
	if ps == nil {
		return nil, fmt.Errorf("Scatter: %w", ErrNilPointSet)
	}
	cfg := newConfig(opts)

	p := plot.New()
	p.Title.Text = cfg.title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%s (%d points)", ps.Kind(), ps.Number())
	}
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(XYs(ps))
	if err != nil {
		return nil, fmt.Errorf("Scatter: %w", err)
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = cfg.glyphRadius
	s.GlyphStyle.Color = cfg.glyphColor
	p.Add(s)

	if cfg.equalAspect {
		setEqualAspect(p, ps)
	}
	return p, nil
}

// Save renders ps and writes it to path. The image format follows the file
// extension (.png, .svg, .pdf, .eps, .jpg, .tif).
func Save(ps *network.PointSet, path string, opts ...Option) error {
	p, err := Scatter(ps, opts...)
	if err != nil {
		return err
	}
	cfg := newConfig(opts)
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("Save %s: %w", path, err)
	}
	return nil
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// setEqualAspect gives both axes the same span, padded by one pitch, so
// lattice angles are not distorted.
func setEqualAspect(p *plot.Plot, ps *network.PointSet) {
	b := ps.Bounds()
	cx, cy := (b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2
	half := max(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)/2 + ps.Pitch()

	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}
