package metadata

import "github.com/google/uuid"

// Property references a catalog concept either by the id of an existing
// entity (matched) or by the raw scraped name (unmatched). Exactly one of the
// two fields is set.
type Property struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Name string     `json:"name,omitempty"`
}

// ByID builds a matched property referencing an existing catalog entity.
func ByID(id uuid.UUID) Property {
	return Property{ID: &id}
}

// ByName builds an unmatched property carrying the scraped name verbatim,
// original casing included.
func ByName(name string) Property {
	return Property{Name: name}
}

// IsMatched reports whether the property resolved to a catalog entity.
func (property Property) IsMatched() bool {
	return property.ID != nil
}
