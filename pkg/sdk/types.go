package huddle

import (
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/search/match"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Kind names an entity collection.
type Kind string

// Collections.
const (
	People      Kind = Kind(kind.People)
	Posts       Kind = Kind(kind.Posts)
	Communities Kind = Kind(kind.Communities)
	Events      Kind = Kind(kind.Events)
)

// Entity is a read-only snapshot of a catalog item.
type Entity struct {
	ID    string
	Kind  Kind
	Label string
	// Fields are the texts search matches against.
	Fields []string
	Lat    *float64
	Lon    *float64
}

// SearchGroup holds the matches of one kind in collection order.
type SearchGroup struct {
	Kind     Kind
	Entities []Entity
}

// Bounds is the map viewport in degrees.
type Bounds struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// Pin places an entity on the map image. Top and Left are CSS percentages;
// hidden pins carry "-100%".
type Pin struct {
	Entity      Entity
	Top, Left   string
	TopPercent  float64
	LeftPercent float64
	Visible     bool
}

// MapView is one projection of the catalog.
type MapView struct {
	Bounds       Bounds
	CenterLat    float64
	CenterLon    float64
	RadiusMeters float64
	// Fallback is set when no entity had coordinates and the default region was used.
	Fallback bool
	Pins     []Pin
}

// Visible returns the pins inside the viewport.
func (v MapView) Visible() []Pin {
	out := make([]Pin, 0, len(v.Pins))
	for _, p := range v.Pins {
		if p.Visible {
			out = append(out, p)
		}
	}
	return out
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status   string            // "ok", "degraded"
	Checks   map[string]string // component -> "ok"/"empty"/"error"
	Entities map[Kind]int
}

// Matches reports whether query is a case-insensitive subsequence of text,
// ignoring whitespace in the query.
func Matches(query, text string) bool {
	return match.Matches(query, text)
}

func toKinds(kinds []Kind) []kind.Kind {
	if len(kinds) == 0 {
		return nil
	}
	out := make([]kind.Kind, len(kinds))
	for i, k := range kinds {
		out[i] = kind.Kind(k)
	}
	return out
}

func entityFromDomain(e social.Entity) Entity {
	loc := e.Location()
	return Entity{
		ID:     e.ID(),
		Kind:   Kind(e.Kind()),
		Label:  e.Label(),
		Fields: e.SearchFields(),
		Lat:    loc.Lat,
		Lon:    loc.Lon,
	}
}

func entitiesFromDomain(items []social.Entity) []Entity {
	out := make([]Entity, len(items))
	for i, e := range items {
		out[i] = entityFromDomain(e)
	}
	return out
}

func pinFromDomain(e social.Entity, pos geo.Position) Pin {
	return Pin{
		Entity:      entityFromDomain(e),
		Top:         pos.Top(),
		Left:        pos.Left(),
		TopPercent:  pos.TopPercent(),
		LeftPercent: pos.LeftPercent(),
		Visible:     pos.Visible(),
	}
}
