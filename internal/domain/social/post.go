package social

import (
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Post is a feed entry.
type Post struct {
	id       string
	authorID string
	content  string
	location geo.Point
}

// NewPost validates and creates a Post.
func NewPost(id, authorID, content string, location geo.Point) (Post, error) {
	if err := validateID(id); err != nil {
		return Post{}, err
	}
	if err := validateRequired(id, "author_id", authorID); err != nil {
		return Post{}, err
	}
	if err := validateRequired(id, "content", content); err != nil {
		return Post{}, err
	}
	if err := validateLocation(id, location); err != nil {
		return Post{}, err
	}
	return Post{id: id, authorID: authorID, content: content, location: location}, nil
}

func (p Post) ID() string             { return p.id }
func (p Post) Kind() kind.Kind        { return kind.Posts }
func (p Post) AuthorID() string       { return p.authorID }
func (p Post) Content() string        { return p.content }
func (p Post) Location() geo.Point    { return p.location }
func (p Post) Label() string          { return p.content }
func (p Post) SearchFields() []string { return []string{p.content} }
