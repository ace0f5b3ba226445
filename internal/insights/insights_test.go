package insights

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterDefaults(t *testing.T) {
	assert.Equal(t, DefaultFilter(), ParseFilter(url.Values{}))

	f := ParseFilter(url.Values{"parameter": {"oxygen"}, "range": {"5y"}, "location": {"arctic"}})
	assert.Equal(t, DefaultFilter(), f, "unknown values fall back to defaults")
}

func TestParseFilterRoundTrip(t *testing.T) {
	f := Filter{Parameter: ParamPressure, TimeRange: LastYear, Location: Indian}
	assert.Equal(t, f, ParseFilter(f.Query()))
}

func TestParameterSwitchesChartKind(t *testing.T) {
	f := DefaultFilter()
	assert.Equal(t, KindLine, Present(Select(f)).Kind)

	f.Parameter = ParamSalinity
	assert.Equal(t, KindScatter, Present(Select(f)).Kind)

	f.Parameter = ParamPressure
	assert.Equal(t, KindLine, Present(Select(f)).Kind)
}

func TestSelectVariants(t *testing.T) {
	tests := []struct {
		param ParameterName
		want  Dataset
	}{
		{ParamTemperature, Temperature{}},
		{ParamSalinity, Salinity{}},
		{ParamPressure, Pressure{}},
	}
	for _, tt := range tests {
		d := Select(Filter{Parameter: tt.param})
		assert.IsType(t, tt.want, d)
		assert.Equal(t, tt.param, d.Name())
		assert.NotEmpty(t, d.Samples())
	}
}

// Time range and location are displayed but not wired to the data.
func TestRangeAndLocationDoNotChangeData(t *testing.T) {
	base := Select(DefaultFilter())
	for _, tr := range TimeRangeOptions {
		for _, loc := range LocationOptions {
			f := DefaultFilter()
			f.TimeRange = TimeRange(tr.Value)
			f.Location = Location(loc.Value)
			if diff := cmp.Diff(base.Samples(), Select(f).Samples()); diff != "" {
				t.Errorf("range=%s location=%s changed data:\n%s", tr.Value, loc.Value, diff)
			}
		}
	}
}

func TestUnapplied(t *testing.T) {
	assert.Empty(t, DefaultFilter().Unapplied())

	f := DefaultFilter()
	f.TimeRange = LastMonth
	assert.Equal(t, []string{"range"}, f.Unapplied())

	f.Location = Pacific
	assert.Equal(t, []string{"range", "location"}, f.Unapplied())
}

func TestExportLogRecords(t *testing.T) {
	log := NewExportLog(2)

	req, err := log.Record("CSV", DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, req.Format)
	assert.NotEmpty(t, req.ID)

	_, err = log.Record("netcdf", DefaultFilter())
	require.NoError(t, err)
	_, err = log.Record("csv", Filter{Parameter: ParamSalinity})
	require.NoError(t, err)

	recent := log.Recent()
	require.Len(t, recent, 2, "log is bounded")
	assert.Equal(t, FormatNetCDF, recent[0].Format)
	assert.Equal(t, "salinity", recent[1].Parameter)
}

func TestExportLogRejectsUnknownFormat(t *testing.T) {
	log := NewExportLog(10)
	_, err := log.Record("xlsx", DefaultFilter())
	if !errors.Is(err, ErrUnknownExportFormat) {
		t.Fatalf("expected ErrUnknownExportFormat, got %v", err)
	}
	assert.Empty(t, log.Recent())
}
