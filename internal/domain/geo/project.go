package geo

import "strconv"

// offscreenPercent is the coordinate used on both axes of the Offscreen sentinel.
const offscreenPercent = -100

// Position is a pin location expressed as percentages of the map viewport,
// measured from the top-left corner.
type Position struct {
	top     float64
	left    float64
	visible bool
}

// Offscreen is the sentinel position for pins that must not be rendered.
var Offscreen = Position{top: offscreenPercent, left: offscreenPercent}

// Project maps p into the viewport described by b.
//
// Latitude is inverted because the vertical pixel axis grows downwards. Points
// with missing coordinates, points outside b and invalid bounds all yield
// Offscreen; the result is never clamped to an edge.
func Project(p Point, b Bounds) Position {
	lat, lon, ok := p.Coordinates()
	if !ok || !b.Valid() {
		return Offscreen
	}

	top := (b.LatMax - lat) / (b.LatMax - b.LatMin) * 100
	left := (lon - b.LonMin) / (b.LonMax - b.LonMin) * 100
	if !inViewport(top) || !inViewport(left) {
		return Offscreen
	}
	return Position{top: top, left: left, visible: true}
}

func inViewport(pct float64) bool {
	return pct >= 0 && pct <= 100
}

// TopPercent returns the vertical offset in percent.
func (p Position) TopPercent() float64 { return p.top }

// LeftPercent returns the horizontal offset in percent.
func (p Position) LeftPercent() float64 { return p.left }

// Visible reports whether the position is inside the viewport.
func (p Position) Visible() bool { return p.visible }

// Top returns the vertical offset as a CSS percentage, e.g. "12.5%".
func (p Position) Top() string { return cssPercent(p.top) }

// Left returns the horizontal offset as a CSS percentage.
func (p Position) Left() string { return cssPercent(p.left) }

func cssPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
