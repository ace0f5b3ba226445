package insights

import (
	"net/url"
)

// TimeRange is the insights time-window selector.
type TimeRange string

const (
	LastMonth   TimeRange = "1m"
	Last3Months TimeRange = "3m"
	Last6Months TimeRange = "6m"
	LastYear    TimeRange = "1y"
)

// Location is the insights ocean-basin selector.
type Location string

const (
	Global   Location = "global"
	Atlantic Location = "atlantic"
	Pacific  Location = "pacific"
	Indian   Location = "indian"
)

// Option is one entry of a selector.
type Option struct {
	Value string
	Label string
}

// ParameterOptions lists the parameter selector entries in display order.
var ParameterOptions = []Option{
	{Value: string(ParamTemperature), Label: "Temperature"},
	{Value: string(ParamSalinity), Label: "Salinity"},
	{Value: string(ParamPressure), Label: "Pressure"},
}

// TimeRangeOptions lists the time range selector entries in display order.
var TimeRangeOptions = []Option{
	{Value: string(LastMonth), Label: "Last Month"},
	{Value: string(Last3Months), Label: "Last 3 Months"},
	{Value: string(Last6Months), Label: "Last 6 Months"},
	{Value: string(LastYear), Label: "Last Year"},
}

// LocationOptions lists the location selector entries in display order.
var LocationOptions = []Option{
	{Value: string(Global), Label: "Global"},
	{Value: string(Atlantic), Label: "Atlantic Ocean"},
	{Value: string(Pacific), Label: "Pacific Ocean"},
	{Value: string(Indian), Label: "Indian Ocean"},
}

// Filter is the state of the three insights selectors.
type Filter struct {
	Parameter ParameterName
	TimeRange TimeRange
	Location  Location
}

// DefaultFilter is the selection shown on first visit.
func DefaultFilter() Filter {
	return Filter{Parameter: ParamTemperature, TimeRange: Last6Months, Location: Global}
}

// ParseFilter reads the selectors from a query string. Missing or unknown
// values keep their defaults.
func ParseFilter(q url.Values) Filter {
	f := DefaultFilter()
	if v := q.Get("parameter"); hasOption(ParameterOptions, v) {
		f.Parameter = ParameterName(v)
	}
	if v := q.Get("range"); hasOption(TimeRangeOptions, v) {
		f.TimeRange = TimeRange(v)
	}
	if v := q.Get("location"); hasOption(LocationOptions, v) {
		f.Location = Location(v)
	}
	return f
}

// Query encodes the filter back into query parameters.
func (f Filter) Query() url.Values {
	q := url.Values{}
	q.Set("parameter", string(f.Parameter))
	q.Set("range", string(f.TimeRange))
	q.Set("location", string(f.Location))
	return q
}

// Unapplied lists the selectors whose value does not reach the displayed
// data. Time range and location are shown but not wired to any dataset;
// whether that is a placeholder or missing wiring is undecided, so the gap is
// reported rather than hidden.
func (f Filter) Unapplied() []string {
	var out []string
	if f.TimeRange != Last6Months {
		out = append(out, "range")
	}
	if f.Location != Global {
		out = append(out, "location")
	}
	return out
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
