package insights

import (
	"fmt"

	"github.com/oceaniq/oceaniq/internal/ocean"
)

// ParameterName is the wire value of the parameter selector.
type ParameterName string

const (
	ParamTemperature ParameterName = "temperature"
	ParamSalinity    ParameterName = "salinity"
	ParamPressure    ParameterName = "pressure"
)

// ChartKind is how a dataset is plotted.
type ChartKind string

const (
	KindLine    ChartKind = "line"
	KindScatter ChartKind = "scatter"
)

// Dataset is the closed set of depth profiles the insights page can show.
// Implementations are Temperature, Salinity and Pressure; callers switch on
// the concrete type.
type Dataset interface {
	Name() ParameterName
	Samples() []ocean.DepthSample
	isDataset()
}

// Temperature is temperature by depth, °C.
type Temperature struct{ Profile []ocean.DepthSample }

// Salinity is salinity by depth, PSU.
type Salinity struct{ Profile []ocean.DepthSample }

// Pressure is pressure by depth, dbar.
type Pressure struct{ Profile []ocean.DepthSample }

func (Temperature) Name() ParameterName { return ParamTemperature }
func (Salinity) Name() ParameterName    { return ParamSalinity }
func (Pressure) Name() ParameterName    { return ParamPressure }

func (d Temperature) Samples() []ocean.DepthSample { return d.Profile }
func (d Salinity) Samples() []ocean.DepthSample    { return d.Profile }
func (d Pressure) Samples() []ocean.DepthSample    { return d.Profile }

func (Temperature) isDataset() {}
func (Salinity) isDataset()    {}
func (Pressure) isDataset()    {}

// Select returns the dataset for the filter. Only the parameter selector
// participates.
func Select(f Filter) Dataset {
	switch f.Parameter {
	case ParamSalinity:
		return Salinity{Profile: ocean.SalinityProfile()}
	case ParamPressure:
		return Pressure{Profile: ocean.PressureProfile()}
	default:
		return Temperature{Profile: ocean.TemperatureProfile()}
	}
}

// Presentation is everything the chart renderer needs to plot a dataset.
type Presentation struct {
	Kind   ChartKind
	Title  string
	XLabel string
	Color  string // hex without '#'
}

// Present describes how d is plotted.
func Present(d Dataset) Presentation {
	switch d := d.(type) {
	case Temperature:
		return Presentation{Kind: KindLine, Title: "Temperature vs Depth Profile", XLabel: "Temperature (°C)", Color: "ff7043"}
	case Salinity:
		return Presentation{Kind: KindScatter, Title: "Salinity vs Depth Profile", XLabel: "Salinity (PSU)", Color: "00bcd4"}
	case Pressure:
		return Presentation{Kind: KindLine, Title: "Pressure vs Depth Profile", XLabel: "Pressure (dbar)", Color: "00bcd4"}
	default:
		panic(fmt.Sprintf("insights: unhandled dataset %T", d))
	}
}
