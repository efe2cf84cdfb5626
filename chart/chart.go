// Package chart builds renderable plot objects on top of gonum/plot.
// Charts are constructed and returned; the caller decides when and where to
// render them.
package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kineticlab/posterior/common"
)

// Chart wraps a plot with an explicit pixel size. The size is applied when
// the chart is saved, since gonum sizes plots at render time.
type Chart struct {
	Plot   *plot.Plot
	Width  int
	Height int

	layers int
}

func New(width, height int, xLabel, yLabel string) *Chart {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return &Chart{
		Plot:   p,
		Width:  width,
		Height: height,
	}
}

// Layers returns how many marks (scatters, lines, bands) have been added.
func (c *Chart) Layers() int {
	return c.layers
}

// AddScatter adds one point per (x, y) pair. A nil color keeps the plotter
// default.
func (c *Chart) AddScatter(pts plotter.XYs, col color.Color) error {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	if col != nil {
		s.GlyphStyle.Color = col
	}
	c.Plot.Add(s)
	c.layers++
	return nil
}

// AddLine draws one connected line through the (x, y) pairs.
func (c *Chart) AddLine(pts plotter.XYs, col color.Color, width vg.Length) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	if col != nil {
		l.LineStyle.Color = col
	}
	l.LineStyle.Width = width
	c.Plot.Add(l)
	c.layers++
	return nil
}

// AddBand fills the region between an upper and a lower curve over a shared
// x domain. All three slices must have the same length.
func (c *Chart) AddBand(xs, upper, lower []float64, col color.Color) error {
	if len(xs) != len(upper) || len(xs) != len(lower) {
		return fmt.Errorf("band over %d xs with %d upper / %d lower values: %w",
			len(xs), len(upper), len(lower), common.ErrorInvalidInput)
	}

	// Walk the upper curve left to right, then the lower curve back.
	ring := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		ring = append(ring, plotter.XY{X: xs[i], Y: upper[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: xs[i], Y: lower[i]})
	}

	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return err
	}
	poly.Color = col
	poly.LineStyle.Color = col
	c.Plot.Add(poly)
	c.layers++
	return nil
}

// XYPairs zips parallel x and y slices into plot points.
func XYPairs(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	xys := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return xys
}

// Save renders the chart at its stored size. The format follows the file
// extension (png, svg, pdf, ...).
func (c *Chart) Save(path string) error {
	return c.Plot.Save(vg.Points(float64(c.Width)), vg.Points(float64(c.Height)), path)
}

// ParseHexColor parses a "#rrggbb" color string.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q is not #rrggbb: %w", s, common.ErrorInvalidInput)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not #rrggbb: %w", s, common.ErrorInvalidInput)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
