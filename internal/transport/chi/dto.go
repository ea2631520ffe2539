package chi

import (
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/usecase/mapview"
	searchuc "github.com/kailas-cloud/huddle/internal/usecase/search"
)

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

const (
	ErrorResponseCodeBadRequest    ErrorResponseCode = "bad_request"
	ErrorResponseCodeUnauthorized  ErrorResponseCode = "unauthorized"
	ErrorResponseCodeInvalidKind   ErrorResponseCode = "invalid_kind"
	ErrorResponseCodeNotFound      ErrorResponseCode = "not_found"
	ErrorResponseCodeInvalidEntity ErrorResponseCode = "invalid_entity"
	ErrorResponseCodeInternalError ErrorResponseCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// LocationResponse carries whichever coordinates are present.
type LocationResponse struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// EntityResponse is the flattened view of any catalog entity. Fields that do
// not apply to the kind are omitted.
type EntityResponse struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Label       string            `json:"label"`
	Username    string            `json:"username,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	AuthorID    string            `json:"author_id,omitempty"`
	Content     string            `json:"content,omitempty"`
	Description string            `json:"description,omitempty"`
	Location    *LocationResponse `json:"location,omitempty"`
}

// EntityListResponse is returned by the catalog routes.
type EntityListResponse struct {
	Kind  string           `json:"kind"`
	Count int              `json:"count"`
	Items []EntityResponse `json:"items"`
}

// SearchGroupResponse holds the matches of one kind.
type SearchGroupResponse struct {
	Kind  string           `json:"kind"`
	Count int              `json:"count"`
	Items []EntityResponse `json:"items"`
}

// SearchResponse is returned by GET /search.
type SearchResponse struct {
	Query  string                `json:"query"`
	Groups []SearchGroupResponse `json:"groups"`
}

// BoundsResponse is the viewport in degrees.
type BoundsResponse struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
}

// PinResponse places one entity on the map image. Top and Left are CSS
// percentages, "-100%" for pins that cannot be drawn.
type PinResponse struct {
	Entity  EntityResponse `json:"entity"`
	Top     string         `json:"top"`
	Left    string         `json:"left"`
	Visible bool           `json:"visible"`
}

// MapResponse is returned by GET /map/pins.
type MapResponse struct {
	Bounds       BoundsResponse   `json:"bounds"`
	Center       LocationResponse `json:"center"`
	RadiusMeters float64          `json:"radius_meters"`
	Fallback     bool             `json:"fallback"`
	Visible      int              `json:"visible"`
	Hidden       int              `json:"hidden"`
	Pins         []PinResponse    `json:"pins"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Entities map[string]int    `json:"entities,omitempty"`
}

func locationToResponse(p geo.Point) *LocationResponse {
	if p.IsEmpty() {
		return nil
	}
	return &LocationResponse{Lat: p.Lat, Lon: p.Lon}
}

func entityToResponse(e social.Entity) EntityResponse {
	resp := EntityResponse{
		ID:       e.ID(),
		Kind:     string(e.Kind()),
		Label:    e.Label(),
		Location: locationToResponse(e.Location()),
	}
	switch v := e.(type) {
	case social.Person:
		resp.Username = v.Username()
		resp.Bio = v.Bio()
	case social.Post:
		resp.AuthorID = v.AuthorID()
		resp.Content = v.Content()
	case social.Community:
		resp.Description = v.Description()
	case social.Event:
		resp.Description = v.Description()
	}
	return resp
}

func entitiesToResponse(items []social.Entity) []EntityResponse {
	out := make([]EntityResponse, len(items))
	for i, e := range items {
		out[i] = entityToResponse(e)
	}
	return out
}

func searchToResponse(query string, groups []searchuc.Group) SearchResponse {
	resp := SearchResponse{Query: query, Groups: make([]SearchGroupResponse, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = SearchGroupResponse{
			Kind:  string(g.Kind),
			Count: len(g.Items),
			Items: entitiesToResponse(g.Items),
		}
	}
	return resp
}

func mapToResponse(v mapview.View) MapResponse {
	resp := MapResponse{
		Bounds: BoundsResponse{
			LatMin: v.Bounds.LatMin,
			LatMax: v.Bounds.LatMax,
			LonMin: v.Bounds.LonMin,
			LonMax: v.Bounds.LonMax,
		},
		Center:       LocationResponse{Lat: v.Center.Lat, Lon: v.Center.Lon},
		RadiusMeters: v.Radius,
		Fallback:     v.Fallback,
		Pins:         make([]PinResponse, len(v.Pins)),
	}
	for i, p := range v.Pins {
		resp.Pins[i] = PinResponse{
			Entity:  entityToResponse(p.Entity),
			Top:     p.Position.Top(),
			Left:    p.Position.Left(),
			Visible: p.Position.Visible(),
		}
		if p.Position.Visible() {
			resp.Visible++
		} else {
			resp.Hidden++
		}
	}
	return resp
}
