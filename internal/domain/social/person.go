package social

import (
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Person is a member profile.
type Person struct {
	id       string
	name     string
	username string
	bio      string
	location geo.Point
}

// NewPerson validates and creates a Person. Name and username are required.
func NewPerson(id, name, username, bio string, location geo.Point) (Person, error) {
	if err := validateID(id); err != nil {
		return Person{}, err
	}
	if err := validateRequired(id, "name", name); err != nil {
		return Person{}, err
	}
	if err := validateRequired(id, "username", username); err != nil {
		return Person{}, err
	}
	if err := validateText(id, "bio", bio); err != nil {
		return Person{}, err
	}
	if err := validateLocation(id, location); err != nil {
		return Person{}, err
	}
	return Person{id: id, name: name, username: username, bio: bio, location: location}, nil
}

// ID returns the person identifier.
func (p Person) ID() string { return p.id }

// Kind returns kind.People.
func (p Person) Kind() kind.Kind { return kind.People }

// Name returns the display name.
func (p Person) Name() string { return p.name }

// Username returns the handle without the leading "@".
func (p Person) Username() string { return p.username }

// Bio returns the profile text.
func (p Person) Bio() string { return p.bio }

// Location returns the home location, possibly empty.
func (p Person) Location() geo.Point { return p.location }

// Label returns the display name.
func (p Person) Label() string { return p.name }

// SearchFields returns name and username. The bio is not searched.
func (p Person) SearchFields() []string { return []string{p.name, p.username} }
