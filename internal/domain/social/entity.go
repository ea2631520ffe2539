// Package social holds the entities of the mock social catalog.
//
// All types are immutable value objects built through validating constructors.
package social

import (
	"fmt"
	"regexp"

	"github.com/kailas-cloud/huddle/internal/domain"
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// MaxIDLength is the maximum entity ID length.
const MaxIDLength = 64

// MaxTextSize is the maximum size in bytes of any free-text field.
const MaxTextSize = 16384

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Entity is the read-side view shared by every catalog item.
type Entity interface {
	ID() string
	Kind() kind.Kind
	// Label is the primary display string (name or title).
	Label() string
	// SearchFields returns the texts the search box matches against.
	SearchFields() []string
	Location() geo.Point
}

func validateID(id string) error {
	if id == "" {
		return domain.NewEntityError("", "id is required")
	}
	if len(id) > MaxIDLength {
		return domain.NewEntityError("", fmt.Sprintf("id too long (max %d)", MaxIDLength))
	}
	if !idRegex.MatchString(id) {
		return domain.NewEntityError(id, "id must be alphanumeric with underscores and hyphens")
	}
	return nil
}

func validateRequired(id, field, value string) error {
	if value == "" {
		return domain.NewEntityError(id, field+" is required")
	}
	return validateText(id, field, value)
}

func validateText(id, field, value string) error {
	if len(value) > MaxTextSize {
		return domain.NewEntityError(id, fmt.Sprintf("%s too large (max %d bytes)", field, MaxTextSize))
	}
	return nil
}

// validateLocation accepts a point with either coordinate missing, but rejects
// present coordinates that are not finite or out of range.
func validateLocation(id string, p geo.Point) error {
	if p.IsEmpty() {
		return nil
	}
	lat, lon := 0.0, 0.0
	if p.Lat != nil {
		lat = *p.Lat
	}
	if p.Lon != nil {
		lon = *p.Lon
	}
	if !geo.ValidateCoordinates(lat, lon) {
		return domain.NewEntityError(id, "location out of range")
	}
	return nil
}
