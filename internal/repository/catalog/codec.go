package catalog

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Hash field names.
const (
	fieldSeq         = "seq"
	fieldName        = "name"
	fieldUsername    = "username"
	fieldBio         = "bio"
	fieldAuthorID    = "author_id"
	fieldContent     = "content"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldLat         = "lat"
	fieldLon         = "lon"
)

// encode flattens an entity into hash fields. Absent coordinates are omitted.
func encode(e social.Entity) (map[string]string, error) {
	var m map[string]string
	switch v := e.(type) {
	case social.Person:
		m = map[string]string{fieldName: v.Name(), fieldUsername: v.Username(), fieldBio: v.Bio()}
	case social.Post:
		m = map[string]string{fieldAuthorID: v.AuthorID(), fieldContent: v.Content()}
	case social.Community:
		m = map[string]string{fieldName: v.Name(), fieldDescription: v.Description()}
	case social.Event:
		m = map[string]string{fieldTitle: v.Title(), fieldDescription: v.Description()}
	default:
		return nil, fmt.Errorf("unsupported entity type %T", e)
	}

	loc := e.Location()
	if loc.Lat != nil {
		m[fieldLat] = strconv.FormatFloat(*loc.Lat, 'g', -1, 64)
	}
	if loc.Lon != nil {
		m[fieldLon] = strconv.FormatFloat(*loc.Lon, 'g', -1, 64)
	}
	return m, nil
}

// decode rebuilds an entity from hash fields, re-running domain validation.
func decode(k kind.Kind, id string, m map[string]string) (social.Entity, error) {
	loc, err := decodeLocation(m)
	if err != nil {
		return nil, err
	}

	switch k {
	case kind.People:
		return social.NewPerson(id, m[fieldName], m[fieldUsername], m[fieldBio], loc)
	case kind.Posts:
		return social.NewPost(id, m[fieldAuthorID], m[fieldContent], loc)
	case kind.Communities:
		return social.NewCommunity(id, m[fieldName], m[fieldDescription], loc)
	case kind.Events:
		return social.NewEvent(id, m[fieldTitle], m[fieldDescription], loc)
	default:
		return nil, fmt.Errorf("unsupported kind %q", k)
	}
}

func decodeLocation(m map[string]string) (geo.Point, error) {
	var p geo.Point
	if s, ok := m[fieldLat]; ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return geo.Point{}, fmt.Errorf("parse lat %q: %w", s, err)
		}
		p.Lat = &v
	}
	if s, ok := m[fieldLon]; ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return geo.Point{}, fmt.Errorf("parse lon %q: %w", s, err)
		}
		p.Lon = &v
	}
	return p, nil
}
