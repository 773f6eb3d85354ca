// Package render draws engine charts to image files and exports matrices.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/op/go-logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sushantpadha/restaurant-sales/engine"
)

var log = logging.MustGetLogger("log")

var namedColors = map[string]color.RGBA{
	"red":     {R: 255, A: 255},
	"green":   {G: 128, A: 255},
	"blue":    {B: 255, A: 255},
	"brown":   {R: 165, G: 42, B: 42, A: 255},
	"magenta": {R: 255, B: 255, A: 255},
	"cyan":    {G: 255, B: 255, A: 255},
}

// Color resolves a palette name; unknown names render black.
func Color(name string) color.Color {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return color.Black
}

// NewPlot builds a gonum plot from a chart config. Line charts draw each
// series as a line with circle markers; bar charts stack series bottom to
// top in series order.
func NewPlot(cfg *engine.ChartConfig, width vg.Length) (*plot.Plot, error) {
	if cfg == nil || len(cfg.Series) == 0 {
		return nil, fmt.Errorf("render: nothing to plot")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XAxis
	p.Y.Label.Text = cfg.YAxis
	p.Legend.Top = true

	switch cfg.ChartType {
	case engine.ChartBar:
		if err := addBars(p, cfg, width); err != nil {
			return nil, err
		}
	default:
		if err := addLines(p, cfg); err != nil {
			return nil, err
		}
	}

	ticks := make([]plot.Tick, len(cfg.Ticks))
	for i, t := range cfg.Ticks {
		ticks[i] = plot.Tick{Value: t.Position, Label: t.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight

	// Limits are applied after Add, which widens them to the data range.
	p.X.Min = cfg.XMin
	p.Y.Min = cfg.YMin
	if len(cfg.Ticks) > 0 {
		pad := cfg.Ticks[0].Position - cfg.XMin
		p.X.Max = math.Max(p.X.Max, cfg.Ticks[len(cfg.Ticks)-1].Position+pad)
	}
	return p, nil
}

func addLines(p *plot.Plot, cfg *engine.ChartConfig) error {
	for _, s := range cfg.Series {
		line, points, err := plotter.NewLinePoints(seriesXYs(s))
		if err != nil {
			return fmt.Errorf("render: series %q: %w", s.Name, err)
		}
		c := Color(s.Color)
		line.Color = c
		points.Color = c
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}
	return nil
}

func addBars(p *plot.Plot, cfg *engine.ChartConfig, width vg.Length) error {
	n := len(cfg.Series[0].Data)
	barWidth := width * 0.6 / vg.Length(n+2)

	var below *plotter.BarChart
	for _, s := range cfg.Series {
		values := make(plotter.Values, len(s.Data))
		for i, pt := range s.Data {
			values[i] = pt.Value
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("render: series %q: %w", s.Name, err)
		}
		bars.Color = Color(s.Color)
		bars.LineStyle.Width = 0
		if len(s.Data) > 0 {
			bars.XMin = s.Data[0].X
		}
		if below != nil {
			bars.StackOn(below)
		}
		below = bars
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	return nil
}

func seriesXYs(s engine.ChartSeries) plotter.XYs {
	xys := make(plotter.XYs, len(s.Data))
	for i, pt := range s.Data {
		xys[i].X = pt.X
		xys[i].Y = pt.Value
	}
	return xys
}

// SaveChart renders cfg to path; the image format follows the extension
// (.png, .svg, .pdf, ...). Sizes are in inches.
func SaveChart(cfg *engine.ChartConfig, path string, widthIn, heightIn float64) error {
	w := vg.Length(widthIn) * vg.Inch
	h := vg.Length(heightIn) * vg.Inch

	p, err := NewPlot(cfg, w)
	if err != nil {
		return err
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: saving %s: %w", path, err)
	}
	log.Infof("Chart written to %s", path)
	return nil
}
