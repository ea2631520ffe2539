package social

import (
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Community is a group members can join.
type Community struct {
	id          string
	name        string
	description string
	location    geo.Point
}

// NewCommunity validates and creates a Community.
func NewCommunity(id, name, description string, location geo.Point) (Community, error) {
	if err := validateID(id); err != nil {
		return Community{}, err
	}
	if err := validateRequired(id, "name", name); err != nil {
		return Community{}, err
	}
	if err := validateText(id, "description", description); err != nil {
		return Community{}, err
	}
	if err := validateLocation(id, location); err != nil {
		return Community{}, err
	}
	return Community{id: id, name: name, description: description, location: location}, nil
}

// ID returns the community identifier.
func (c Community) ID() string { return c.id }

// Kind returns kind.Communities.
func (c Community) Kind() kind.Kind { return kind.Communities }

// Name returns the community name.
func (c Community) Name() string { return c.name }

// Description returns the community description.
func (c Community) Description() string { return c.description }

// Location returns where the community meets, possibly empty.
func (c Community) Location() geo.Point { return c.location }

// Label returns the community name.
func (c Community) Label() string { return c.name }

// SearchFields returns name and description.
func (c Community) SearchFields() []string { return []string{c.name, c.description} }
