// Package seed loads the mock social dataset from YAML into the catalog.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social"
)

// Writer stores catalog entities.
type Writer interface {
	Put(ctx context.Context, e social.Entity) error
}

// Location is an optional coordinate pair; either key may be omitted.
type Location struct {
	Lat *float64 `yaml:"lat"`
	Lon *float64 `yaml:"lon"`
}

// Person is the seed shape of a social.Person.
type Person struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Username string    `yaml:"username"`
	Bio      string    `yaml:"bio"`
	Location *Location `yaml:"location"`
}

// Post is the seed shape of a social.Post.
type Post struct {
	ID       string    `yaml:"id"`
	AuthorID string    `yaml:"author_id"`
	Content  string    `yaml:"content"`
	Location *Location `yaml:"location"`
}

// Community is the seed shape of a social.Community.
type Community struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Location    *Location `yaml:"location"`
}

// Event is the seed shape of a social.Event.
type Event struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Location    *Location `yaml:"location"`
}

// File is the top-level seed document.
type File struct {
	People      []Person    `yaml:"people"`
	Posts       []Post      `yaml:"posts"`
	Communities []Community `yaml:"communities"`
	Events      []Event     `yaml:"events"`
}

// Load reads and validates a seed file. Entities come back in file order:
// people, posts, communities, events.
func Load(path string) ([]social.Entity, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates a seed document.
func Parse(data []byte) ([]social.Entity, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	out := make([]social.Entity, 0, len(f.People)+len(f.Posts)+len(f.Communities)+len(f.Events))
	for i, p := range f.People {
		e, err := social.NewPerson(p.ID, p.Name, p.Username, p.Bio, p.Location.point())
		if err != nil {
			return nil, fmt.Errorf("people[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	for i, p := range f.Posts {
		e, err := social.NewPost(p.ID, p.AuthorID, p.Content, p.Location.point())
		if err != nil {
			return nil, fmt.Errorf("posts[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	for i, c := range f.Communities {
		e, err := social.NewCommunity(c.ID, c.Name, c.Description, c.Location.point())
		if err != nil {
			return nil, fmt.Errorf("communities[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	for i, ev := range f.Events {
		e, err := social.NewEvent(ev.ID, ev.Title, ev.Description, ev.Location.point())
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Apply writes entities in order. It stops at the first failure.
func Apply(ctx context.Context, w Writer, entities []social.Entity) error {
	for _, e := range entities {
		if err := w.Put(ctx, e); err != nil {
			return fmt.Errorf("seed %s %s: %w", e.Kind(), e.ID(), err)
		}
	}
	return nil
}

func (l *Location) point() geo.Point {
	if l == nil {
		return geo.Point{}
	}
	return geo.Point{Lat: l.Lat, Lon: l.Lon}
}
