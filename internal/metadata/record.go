package metadata

import (
	"time"

	"github.com/tsukihara/workshelf/internal/storefront"
)

// Record is the catalog-ready description of one owned work: scraped fields
// translated into the host library's vocabulary, with every named concept
// resolved to a [Property].
type Record struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Icon            string `json:"icon,omitempty"`
	CoverImage      string `json:"cover_image,omitempty"`
	BackgroundImage string `json:"background_image,omitempty"`

	Links       []storefront.Link `json:"links,omitempty"`
	ReleaseDate *time.Time        `json:"release_date,omitempty"`

	// CommunityScore is the storefront rating rescaled to 0–100, nil when the
	// page carried no rating.
	CommunityScore *int `json:"community_score,omitempty"`

	Features   []Property `json:"features,omitempty"`
	Genres     []Property `json:"genres,omitempty"`
	Developers []Property `json:"developers,omitempty"`
	Publishers []Property `json:"publishers,omitempty"`
	AgeRatings []Property `json:"age_ratings,omitempty"`
	Series     []Property `json:"series,omitempty"`
}
