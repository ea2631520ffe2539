package geo

// PaddingRatio is the share of each axis span added on both sides of a bounding box.
const PaddingRatio = 0.1

// MinPadding is the padding in degrees used when an axis has no span.
const MinPadding = 0.01

// Bounds is an axis-aligned lat/lon rectangle.
type Bounds struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// FallbackBounds returns the region shown when no entity carries coordinates
// (San Francisco Bay area).
func FallbackBounds() Bounds {
	return Bounds{
		LatMin: 37.70,
		LatMax: 37.82,
		LonMin: -122.52,
		LonMax: -122.35,
	}
}

// ComputeBounds returns the padded bounding box around every point with both
// coordinates set. Points with missing or non-finite coordinates are ignored.
// The result is never degenerate: LatMax > LatMin and LonMax > LonMin.
func ComputeBounds(points []Point) Bounds {
	var b Bounds
	found := false
	for _, p := range points {
		lat, lon, ok := p.Coordinates()
		if !ok {
			continue
		}
		if !found {
			b = Bounds{LatMin: lat, LatMax: lat, LonMin: lon, LonMax: lon}
			found = true
			continue
		}
		b.LatMin = min(b.LatMin, lat)
		b.LatMax = max(b.LatMax, lat)
		b.LonMin = min(b.LonMin, lon)
		b.LonMax = max(b.LonMax, lon)
	}
	if !found {
		return FallbackBounds()
	}

	b.LatMin, b.LatMax = pad(b.LatMin, b.LatMax)
	b.LonMin, b.LonMax = pad(b.LonMin, b.LonMax)
	return b
}

// pad expands [lo, hi] by PaddingRatio of its span on both sides. When the span is
// zero, or too small to survive float rounding, MinPadding is used instead.
func pad(lo, hi float64) (float64, float64) {
	p := (hi - lo) * PaddingRatio
	if p == 0 || !(hi+p > lo-p) {
		p = MinPadding
	}
	return lo - p, hi + p
}

// Center returns the midpoint of the box on each axis.
func (b Bounds) Center() Point {
	return At((b.LatMin+b.LatMax)/2, (b.LonMin+b.LonMax)/2)
}

// Valid reports whether both spans are finite and strictly positive.
func (b Bounds) Valid() bool {
	latSpan := b.LatMax - b.LatMin
	lonSpan := b.LonMax - b.LonMin
	return isFinite(latSpan) && isFinite(lonSpan) && latSpan > 0 && lonSpan > 0
}

// Contains reports whether p lies inside the box, edges included.
func (b Bounds) Contains(p Point) bool {
	lat, lon, ok := p.Coordinates()
	if !ok {
		return false
	}
	return lat >= b.LatMin && lat <= b.LatMax && lon >= b.LonMin && lon <= b.LonMax
}

// RadiusMeters returns the great-circle distance from the center to the
// north-east corner.
func (b Bounds) RadiusMeters() float64 {
	c := b.Center()
	return Haversine(*c.Lat, *c.Lon, b.LatMax, b.LonMax)
}
