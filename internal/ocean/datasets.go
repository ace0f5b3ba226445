package ocean

// Literal chart datasets. None of these are ever mutated; accessors hand
// out copies.

var monthlyTemperature = []LabeledSample{
	{Label: "Jan", Value: 14.2},
	{Label: "Feb", Value: 14.8},
	{Label: "Mar", Value: 15.4},
	{Label: "Apr", Value: 16.1},
	{Label: "May", Value: 17.2},
	{Label: "Jun", Value: 18.9},
}

var surfaceSalinity = []DepthSample{
	{Depth: 0, Value: 35.2},
	{Depth: 50, Value: 35.4},
	{Depth: 100, Value: 35.6},
	{Depth: 200, Value: 35.8},
	{Depth: 500, Value: 34.9},
	{Depth: 1000, Value: 34.7},
}

var temperatureProfile = []DepthSample{
	{Depth: 0, Value: 18.5},
	{Depth: 50, Value: 17.2},
	{Depth: 100, Value: 15.8},
	{Depth: 200, Value: 12.4},
	{Depth: 500, Value: 8.9},
	{Depth: 1000, Value: 4.2},
	{Depth: 1500, Value: 2.8},
	{Depth: 2000, Value: 1.9},
}

var salinityProfile = []DepthSample{
	{Depth: 0, Value: 35.2},
	{Depth: 50, Value: 35.4},
	{Depth: 100, Value: 35.6},
	{Depth: 200, Value: 35.8},
	{Depth: 500, Value: 34.9},
	{Depth: 1000, Value: 34.7},
	{Depth: 1500, Value: 34.6},
	{Depth: 2000, Value: 34.8},
}

var pressureProfile = []DepthSample{
	{Depth: 0, Value: 0},
	{Depth: 100, Value: 10.1},
	{Depth: 200, Value: 20.3},
	{Depth: 500, Value: 50.8},
	{Depth: 1000, Value: 101.3},
	{Depth: 1500, Value: 151.9},
	{Depth: 2000, Value: 202.6},
}

// MonthlyTemperature is the dashboard's average temperature by month (°C).
func MonthlyTemperature() []LabeledSample { return cloneLabeled(monthlyTemperature) }

// SurfaceSalinity is the dashboard's salinity by depth, surface to 1000 m (PSU).
func SurfaceSalinity() []DepthSample { return cloneDepth(surfaceSalinity) }

// TemperatureProfile is temperature by depth, surface to 2000 m (°C).
func TemperatureProfile() []DepthSample { return cloneDepth(temperatureProfile) }

// SalinityProfile is salinity by depth, surface to 2000 m (PSU).
func SalinityProfile() []DepthSample { return cloneDepth(salinityProfile) }

// PressureProfile is pressure by depth, surface to 2000 m (dbar).
func PressureProfile() []DepthSample { return cloneDepth(pressureProfile) }

func cloneDepth(in []DepthSample) []DepthSample {
	out := make([]DepthSample, len(in))
	copy(out, in)
	return out
}

func cloneLabeled(in []LabeledSample) []LabeledSample {
	out := make([]LabeledSample, len(in))
	copy(out, in)
	return out
}
