package storefront

import "time"

// AgeRating is the storefront's age classification badge, reduced to a fixed
// vocabulary.
type AgeRating string

const (
	AgeAllAges AgeRating = "All ages"
	AgeRRated  AgeRating = "R-Rated"
	AgeAdult   AgeRating = "Adult"
)

// Link is one outbound link extracted from a product page. Order matters.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Work is the raw structured output of parsing one product page in one locale.
//
// All string fields carry locale-dependent text exactly as rendered by the
// storefront. A field whose marker is absent on the page is left at its zero
// value; parsing never fails on missing fields.
type Work struct {
	ProductID   string `json:"product_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Icon is the small representative image (og:image).
	Icon string `json:"icon"`

	// MainImage is the designated cover: the first entry of the product's
	// image gallery. Empty when the gallery is empty.
	MainImage string `json:"main_image"`

	// SampleImages is the ordered remainder of the gallery, used for
	// background/gallery purposes downstream.
	SampleImages []string `json:"sample_images"`

	// Rating is the storefront-native 0–5 community rating, nil when absent
	// or unparsable.
	Rating *float64 `json:"rating"`

	ReleaseDate *time.Time `json:"release_date"`
	Age         *AgeRating `json:"age"`

	Genres        []string `json:"genres"`
	ProductFormat []string `json:"product_format"`
	FileFormat    []string `json:"file_format"`

	// Circle is the primary circle/studio name.
	Circle          *string  `json:"circle"`
	Authors         []string `json:"authors"`
	Illustrators    []string `json:"illustrators"`
	ScenarioWriters []string `json:"scenario_writers"`
	MusicCreators   []string `json:"music_creators"`
	VoiceActors     []string `json:"voice_actors"`

	Series *string `json:"series"`
	Links  []Link  `json:"links"`
}
