// Package chart renders the literal datasets to SVG.
package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Kind selects how a series is drawn.
type Kind string

const (
	Line    Kind = "line"
	Area    Kind = "area"
	Scatter Kind = "scatter"
)

// Tick is a labelled position on the X axis.
type Tick struct {
	Value float64
	Label string
}

// Series is a sequence of {x, y} pairs drawn in order.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Spec describes one plot.
type Spec struct {
	Kind     Kind
	Title    string
	XLabel   string
	YLabel   string
	Color    string // hex, with or without '#'
	Width    int
	Height   int
	ReverseY bool   // depth grows downwards
	XTicks   []Tick // categorical labels; empty means numeric ticks
}

const (
	defaultWidth  = 640
	defaultHeight = 300
)

var (
	axisColor = drawing.ColorFromHex("9CA3AF")
	gridColor = drawing.ColorFromHex("374151")
)

// Render writes s as an SVG document to w.
func Render(w io.Writer, spec Spec, s Series) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("chart: %d x values but %d y values", len(s.X), len(s.Y))
	}
	if len(s.X) < 2 {
		return errors.New("chart: at least two points are required")
	}

	c := gochart.Chart{
		Title:  spec.Title,
		Width:  orDefault(spec.Width, defaultWidth),
		Height: orDefault(spec.Height, defaultHeight),
		Background: gochart.Style{
			FillColor: drawing.ColorTransparent,
			Padding:   gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: gochart.Style{FillColor: drawing.ColorTransparent},
		XAxis: gochart.XAxis{
			Name:           spec.XLabel,
			NameStyle:      gochart.Style{FontColor: axisColor},
			Style:          gochart.Style{StrokeColor: axisColor, FontColor: axisColor},
			GridMajorStyle: gochart.Style{StrokeColor: gridColor, StrokeWidth: 1},
			Ticks:          toTicks(spec.XTicks),
		},
		YAxis: gochart.YAxis{
			Name:           spec.YLabel,
			NameStyle:      gochart.Style{FontColor: axisColor},
			Style:          gochart.Style{StrokeColor: axisColor, FontColor: axisColor},
			GridMajorStyle: gochart.Style{StrokeColor: gridColor, StrokeWidth: 1},
			Range:          yRange(s.Y, spec.ReverseY),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    s.Name,
				XValues: s.X,
				YValues: s.Y,
				Style:   seriesStyle(spec.Kind, drawing.ColorFromHex(trimHash(spec.Color))),
			},
		},
	}

	if err := c.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("chart: rendering %q: %w", spec.Title, err)
	}
	return nil
}

func seriesStyle(kind Kind, col drawing.Color) gochart.Style {
	switch kind {
	case Scatter:
		return gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    6,
			DotColor:    col,
		}
	case Area:
		return gochart.Style{
			StrokeColor: col,
			StrokeWidth: 2,
			FillColor:   col.WithAlpha(80),
		}
	default:
		return gochart.Style{
			StrokeColor: col,
			StrokeWidth: 3,
			DotWidth:    4,
			DotColor:    col,
		}
	}
}

func yRange(ys []float64, descending bool) *gochart.ContinuousRange {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	if lo == hi {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi, Descending: descending}
}

func toTicks(in []Tick) []gochart.Tick {
	if len(in) == 0 {
		return nil
	}
	out := make([]gochart.Tick, len(in))
	for i, t := range in {
		out[i] = gochart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func trimHash(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}
