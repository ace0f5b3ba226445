package ocean

import (
	"errors"
	"fmt"
)

// ErrFloatNotFound is returned when no float carries the requested identifier.
var ErrFloatNotFound = errors.New("float not found")

var floats = []ArgoFloat{
	{ID: "ARGO_5904623", Lat: 35.2, Lng: -42.1, Status: StatusActive, Temperature: 16.3, Salinity: 35.2, LastUpdate: "2 hours ago"},
	{ID: "ARGO_5904587", Lat: 28.5, Lng: -38.7, Status: StatusActive, Temperature: 18.1, Salinity: 35.4, LastUpdate: "1 hour ago"},
	{ID: "ARGO_5904591", Lat: -15.3, Lng: 67.8, Status: StatusDiving, Temperature: 14.2, Salinity: 34.9, LastUpdate: "3 hours ago"},
	{ID: "ARGO_5904612", Lat: 42.1, Lng: -28.3, Status: StatusSurfaced, Temperature: 12.8, Salinity: 35.1, LastUpdate: "30 minutes ago"},
	{ID: "ARGO_5904634", Lat: -5.2, Lng: 15.4, Status: StatusActive, Temperature: 19.5, Salinity: 35.6, LastUpdate: "45 minutes ago"},
}

// Floats returns the mock float catalogue in display order.
// The returned slice is a copy; callers may modify it freely.
func Floats() []ArgoFloat {
	out := make([]ArgoFloat, len(floats))
	copy(out, floats)
	return out
}

// FloatByID looks up a float by its identifier.
func FloatByID(id string) (ArgoFloat, error) {
	for _, f := range floats {
		if f.ID == id {
			return f, nil
		}
	}
	return ArgoFloat{}, fmt.Errorf("%w: %q", ErrFloatNotFound, id)
}

// Project maps a latitude/longitude pair onto the flat mock map using a
// plain linear transform. No projection correction is applied.
func Project(lat, lng float64) Point {
	return Point{
		X: (lng + 180) / 360 * 100,
		Y: (90 - lat) / 180 * 100,
	}
}

// Position returns the float's location on the mock map.
func (f ArgoFloat) Position() Point {
	return Project(f.Lat, f.Lng)
}
