// Package geo holds the geographic value types used to place map pins.
package geo

import "math"

// Point is a geographic coordinate whose latitude and longitude may each be absent.
type Point struct {
	Lat *float64
	Lon *float64
}

// At returns a Point with both coordinates set.
func At(lat, lon float64) Point {
	return Point{Lat: &lat, Lon: &lon}
}

// Coordinates returns the latitude and longitude when both are present and finite.
func (p Point) Coordinates() (lat, lon float64, ok bool) {
	if p.Lat == nil || p.Lon == nil {
		return 0, 0, false
	}
	lat, lon = *p.Lat, *p.Lon
	if !isFinite(lat) || !isFinite(lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// IsSet reports whether the point has usable coordinates.
func (p Point) IsSet() bool {
	_, _, ok := p.Coordinates()
	return ok
}

// IsEmpty reports whether neither coordinate is present.
func (p Point) IsEmpty() bool {
	return p.Lat == nil && p.Lon == nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
