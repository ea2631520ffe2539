package social

import (
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Event is a meetup pinned on the map.
type Event struct {
	id          string
	title       string
	description string
	location    geo.Point
}

// NewEvent validates and creates an Event.
func NewEvent(id, title, description string, location geo.Point) (Event, error) {
	if err := validateID(id); err != nil {
		return Event{}, err
	}
	if err := validateRequired(id, "title", title); err != nil {
		return Event{}, err
	}
	if err := validateText(id, "description", description); err != nil {
		return Event{}, err
	}
	if err := validateLocation(id, location); err != nil {
		return Event{}, err
	}
	return Event{id: id, title: title, description: description, location: location}, nil
}

func (e Event) ID() string          { return e.id }
func (e Event) Kind() kind.Kind     { return kind.Events }
func (e Event) Title() string       { return e.title }
func (e Event) Description() string { return e.description }
func (e Event) Location() geo.Point { return e.location }
func (e Event) Label() string       { return e.title }

// SearchFields returns title and description.
func (e Event) SearchFields() []string { return []string{e.title, e.description} }

// Compile-time checks.
var (
	_ Entity = Person{}
	_ Entity = Post{}
	_ Entity = Community{}
	_ Entity = Event{}
)
