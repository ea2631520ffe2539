// Package mapview places geotagged catalog entities on the static map image.
package mapview

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/huddle/internal/domain"
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
	logpkg "github.com/kailas-cloud/huddle/internal/logger"
	"github.com/kailas-cloud/huddle/internal/metrics"
)

// Pin is one entity and where to draw it.
type Pin struct {
	Entity   social.Entity
	Position geo.Position
}

// View is a map snapshot. Pins that cannot be drawn are kept with the Offscreen
// position so callers can report them.
type View struct {
	Bounds   geo.Bounds
	Center   geo.Point
	Radius   float64 // meters, center to north-east corner
	Fallback bool    // no entity had coordinates
	Pins     []Pin
}

// Visible returns the pins inside the viewport.
func (v View) Visible() []Pin {
	out := make([]Pin, 0, len(v.Pins))
	for _, p := range v.Pins {
		if p.Position.Visible() {
			out = append(out, p)
		}
	}
	return out
}

// Service builds map views from the current catalog snapshot.
type Service struct {
	catalog Catalog
}

// New creates a map view service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Pins computes bounds over every requested entity and projects each one.
// No kinds means every mappable kind. Nothing is cached between calls.
func (s *Service) Pins(ctx context.Context, kinds []kind.Kind) (View, error) {
	kinds, err := resolveKinds(kinds)
	if err != nil {
		return View{}, err
	}

	var entities []social.Entity
	for _, k := range kinds {
		items, err := s.catalog.List(ctx, k)
		if err != nil {
			return View{}, fmt.Errorf("list %s: %w", k, err)
		}
		entities = append(entities, items...)
	}

	points := make([]geo.Point, len(entities))
	fallback := true
	for i, e := range entities {
		points[i] = e.Location()
		if points[i].IsSet() {
			fallback = false
		}
	}

	bounds := geo.ComputeBounds(points)
	view := View{
		Bounds:   bounds,
		Center:   bounds.Center(),
		Radius:   bounds.RadiusMeters(),
		Fallback: fallback,
		Pins:     make([]Pin, len(entities)),
	}

	visible := 0
	for i, e := range entities {
		pos := geo.Project(points[i], bounds)
		if pos.Visible() {
			visible++
		}
		view.Pins[i] = Pin{Entity: e, Position: pos}
	}

	metrics.MapPinsTotal.WithLabelValues("visible").Add(float64(visible))
	metrics.MapPinsTotal.WithLabelValues("offscreen").Add(float64(len(entities) - visible))
	if fallback {
		metrics.MapFallbackBoundsTotal.Inc()
	}

	logpkg.FromContext(ctx).Debug("map view",
		zap.Int("entities", len(entities)),
		zap.Int("visible", visible),
		zap.Bool("fallback", fallback),
	)
	return view, nil
}

func resolveKinds(kinds []kind.Kind) ([]kind.Kind, error) {
	if len(kinds) == 0 {
		return kind.Mappable(), nil
	}
	seen := make(map[kind.Kind]bool, len(kinds))
	out := make([]kind.Kind, 0, len(kinds))
	for _, k := range kinds {
		if !k.IsMappable() {
			return nil, fmt.Errorf("%w: %q has no map pins", domain.ErrInvalidKind, k)
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}
