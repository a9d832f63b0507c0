// Package plotting renders sample clouds with gonum/plot.
package plotting

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrAxis indicates that a requested dimension is outside the samples.
var ErrAxis = errors.New("plotting: axis out of range")

// ErrNoSamples indicates an empty sample set.
var ErrNoSamples = errors.New("plotting: no samples")

// Scatter describes a 2D projection of a set of samples.
type Scatter struct {
	Title string
	X, Y  int       // dimensions drawn on the horizontal and vertical axes
	Width vg.Length // side of the square canvas; zero means 6in
}

// ParseWidth parses a canvas length such as "6in", "15cm" or "400pt".
// The empty string yields the 6in default.
func ParseWidth(s string) (vg.Length, error) {
	if s == "" {
		return 6 * vg.Inch, nil
	}
	l, err := vg.ParseLength(s)
	if err != nil {
		return 0, fmt.Errorf("plotting: width %q: %w", s, err)
	}
	if l <= 0 {
		return 0, fmt.Errorf("plotting: width %q must be positive", s)
	}

	return l, nil
}

// build lays out the plot for samples.
func (s Scatter) build(samples [][]float64) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	pts := make(plotter.XYs, len(samples))
	for i, x := range samples {
		if s.X < 0 || s.Y < 0 || s.X >= len(x) || s.Y >= len(x) {
			return nil, fmt.Errorf("%w: x=%d y=%d, sample %d has %d dimensions", ErrAxis, s.X, s.Y, i, len(x))
		}
		pts[i].X, pts[i].Y = x[s.X], x[s.Y]
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = fmt.Sprintf("x[%d]", s.X)
	p.Y.Label.Text = fmt.Sprintf("x[%d]", s.Y)
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("plotting: %w", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1)
	p.Add(sc)

	return p, nil
}

func (s Scatter) side() vg.Length {
	if s.Width <= 0 {
		return 6 * vg.Inch
	}

	return s.Width
}

// Save renders samples to path; the format follows the file extension
// (png, svg, pdf, ...).
func (s Scatter) Save(path string, samples [][]float64) error {
	p, err := s.build(samples)
	if err != nil {
		return err
	}
	if err := p.Save(s.side(), s.side(), path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", filepath.Base(path), err)
	}

	return nil
}

// WriteTo renders samples to w in the given format ("png", "svg", ...).
func (s Scatter) WriteTo(w io.Writer, format string, samples [][]float64) error {
	p, err := s.build(samples)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(s.side(), s.side(), strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("plotting: write: %w", err)
	}

	return nil
}
