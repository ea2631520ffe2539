package kind

// Kind names a collection of social entities.
type Kind string

// Entity kinds.
const (
	People      Kind = "people"
	Posts       Kind = "posts"
	Communities Kind = "communities"
	// Events are geotagged meetups shown on the map.
	Events Kind = "events"
)

// All lists every kind in display order.
func All() []Kind {
	return []Kind{People, Posts, Communities, Events}
}

// Searchable lists the kinds the search box filters, in display order.
func Searchable() []Kind {
	return []Kind{People, Posts, Communities}
}

// Mappable lists the kinds that can carry a map pin, in display order.
func Mappable() []Kind {
	return []Kind{People, Communities, Events}
}

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == People || k == Posts || k == Communities || k == Events
}

// IsSearchable reports whether the kind takes part in text search.
func (k Kind) IsSearchable() bool {
	return k == People || k == Posts || k == Communities
}

// IsMappable reports whether the kind takes part in the map view.
func (k Kind) IsMappable() bool {
	return k == People || k == Communities || k == Events
}
