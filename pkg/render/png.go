// Package render draws sampled Weierstrass curves as image files and HTML
// charts.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wildfunctions/weierstrass/pkg/series"
)

const (
	plotWidth  = 12 * vg.Inch
	plotHeight = 5 * vg.Inch
)

var curveColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// NewPlot builds a line plot of s with 1-2-5 axis ticks.
func NewPlot(s *series.Samples) (*plot.Plot, error) {
	if s == nil || s.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples to plot", series.ErrInvalidArgument)
	}

	p := plot.New()
	p.Title.Text = s.Candidate.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "W(x)"
	p.X.Tick.Marker = NiceTicker{}
	p.Y.Tick.Marker = NiceTicker{}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, s.Len())
	for i, pt := range s.Points {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = curveColor
	line.Width = vg.Points(1)
	p.Add(line)

	return p, nil
}

// SavePlot writes s to path. The image format follows the file extension
// (.png, .svg, .pdf, ...).
func SavePlot(s *series.Samples, path string) error {
	p, err := NewPlot(s)
	if err != nil {
		return err
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
