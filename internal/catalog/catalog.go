package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies which class of catalog entity a name resolves against.
type Kind string

const (
	KindFeature   Kind = "feature"
	KindGenre     Kind = "genre"
	KindCompany   Kind = "company"
	KindAgeRating Kind = "age_rating"
	KindSeries    Kind = "series"
)

// Entity is a pre-existing named record in the host catalog. The sync core
// never creates entities; it only resolves scraped names against them.
type Entity struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}
