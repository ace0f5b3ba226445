package web

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oceaniq/oceaniq/internal/chart"
	"github.com/oceaniq/oceaniq/internal/insights"
	"github.com/oceaniq/oceaniq/internal/ocean"
)

// ErrUnknownChart is returned for chart paths nothing renders.
var ErrUnknownChart = errors.New("unknown chart")

const (
	dashboardTemperatureChart = "/charts/dashboard/temperature.svg"
	dashboardSalinityChart    = "/charts/dashboard/salinity.svg"
	insightsChartPrefix       = "/charts/insights/"
)

// ChartPaths lists every chart URL the pages reference.
func ChartPaths() []string {
	paths := []string{dashboardTemperatureChart, dashboardSalinityChart}
	for _, o := range insights.ParameterOptions {
		paths = append(paths, insightsChartPrefix+o.Value+".svg")
	}
	return paths
}

// RenderChart writes the SVG served at path.
func (s *Site) RenderChart(w io.Writer, path string) error {
	switch path {
	case dashboardTemperatureChart:
		return renderMonthlyTemperature(w)
	case dashboardSalinityChart:
		return renderSurfaceSalinity(w)
	}

	name, ok := strings.CutPrefix(path, insightsChartPrefix)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChart, path)
	}
	name, ok = strings.CutSuffix(name, ".svg")
	if !ok || !knownParameter(name) {
		return fmt.Errorf("%w: %s", ErrUnknownChart, path)
	}
	d := insights.Select(insights.Filter{Parameter: insights.ParameterName(name)})
	return renderProfile(w, d)
}

func renderMonthlyTemperature(w io.Writer) error {
	samples := ocean.MonthlyTemperature()
	series := chart.Series{Name: "temperature"}
	ticks := make([]chart.Tick, len(samples))
	for i, smp := range samples {
		series.X = append(series.X, float64(i))
		series.Y = append(series.Y, smp.Value)
		ticks[i] = chart.Tick{Value: float64(i), Label: smp.Label}
	}
	return chart.Render(w, chart.Spec{
		Kind:   chart.Line,
		Title:  "Temperature Trends",
		YLabel: "°C",
		Color:  "00bcd4",
		XTicks: ticks,
	}, series)
}

func renderSurfaceSalinity(w io.Writer) error {
	series := chart.Series{Name: "salinity"}
	for _, smp := range ocean.SurfaceSalinity() {
		series.X = append(series.X, smp.Depth)
		series.Y = append(series.Y, smp.Value)
	}
	return chart.Render(w, chart.Spec{
		Kind:   chart.Area,
		Title:  "Salinity by Depth",
		XLabel: "Depth (m)",
		YLabel: "PSU",
		Color:  "ff7043",
	}, series)
}

// renderProfile plots a vertical profile with depth growing downwards.
func renderProfile(w io.Writer, d insights.Dataset) error {
	p := insights.Present(d)
	series := chart.Series{Name: string(d.Name())}
	for _, smp := range d.Samples() {
		series.X = append(series.X, smp.Value)
		series.Y = append(series.Y, smp.Depth)
	}
	return chart.Render(w, chart.Spec{
		Kind:     chartKind(p.Kind),
		Title:    p.Title,
		XLabel:   p.XLabel,
		YLabel:   "Depth (m)",
		Color:    p.Color,
		Height:   400,
		ReverseY: true,
	}, series)
}

func chartKind(k insights.ChartKind) chart.Kind {
	if k == insights.KindScatter {
		return chart.Scatter
	}
	return chart.Line
}

func knownParameter(name string) bool {
	for _, o := range insights.ParameterOptions {
		if o.Value == name {
			return true
		}
	}
	return false
}
