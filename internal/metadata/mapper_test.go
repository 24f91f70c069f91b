package metadata_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukihara/workshelf/internal/catalog"
	"github.com/tsukihara/workshelf/internal/metadata"
	"github.com/tsukihara/workshelf/internal/settings"
	"github.com/tsukihara/workshelf/internal/storefront"
	"github.com/tsukihara/workshelf/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleWork() *storefront.Work {
	release := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	age := storefront.AgeAdult

	return &storefront.Work{
		ProductID:   "RJ123456",
		Title:       "Whispering Dungeon",
		Description: "A long crawl through a talkative dungeon.",
		Icon:        "https://img.example/icon.jpg",
		MainImage:   "https://img.example/main.jpg",
		SampleImages: []string{
			"https://img.example/sample1.jpg",
			"https://img.example/sample2.jpg",
		},
		Rating:          pointer.To(4.3),
		ReleaseDate:     &release,
		Age:             &age,
		Genres:          []string{"Fantasy", "Healing"},
		ProductFormat:   []string{"Voiced Comic"},
		FileFormat:      []string{"MP4"},
		Circle:          pointer.To("Moonlit Atelier"),
		Authors:         []string{"Aoi Hoshino"},
		Illustrators:    []string{"Ren Katsuragi"},
		ScenarioWriters: []string{"Aoi Hoshino"},
		MusicCreators:   []string{"fujino"},
		VoiceActors:     []string{"Suzu Amane", "Mio Kanzaki"},
		Series:          pointer.To("Whispering Tales"),
		Links: []storefront.Link{
			{Label: "DLsite", URL: "https://store.example/work.html"},
			{Label: "Moonlit Atelier", URL: "https://store.example/circle"},
		},
	}
}

/* TestMap_ResolvesAgainstCatalog verifies that names present in the catalog
become id references regardless of casing, while unknown names stay as
verbatim name references. */
func TestMap_ResolvesAgainstCatalog(t *testing.T) {
	lookup := catalog.NewMemoryLookup()
	fantasy := lookup.Add(catalog.KindGenre, "fantasy")
	circle := lookup.Add(catalog.KindCompany, "MOONLIT ATELIER")

	mapper := metadata.NewMapper(lookup, discardLogger())

	record, err := mapper.Map(context.Background(), sampleWork(), settings.Default())
	require.NoError(t, err)

	require.Len(t, record.Genres, 2)
	require.True(t, record.Genres[0].IsMatched())
	assert.Equal(t, fantasy.ID, *record.Genres[0].ID)
	assert.False(t, record.Genres[1].IsMatched())
	assert.Equal(t, "Healing", record.Genres[1].Name)

	// Authors first, circle second; both developers, circle matched.
	require.Len(t, record.Developers, 2)
	assert.Equal(t, "Aoi Hoshino", record.Developers[0].Name)
	require.True(t, record.Developers[1].IsMatched())
	assert.Equal(t, circle.ID, *record.Developers[1].ID)
}

/* TestMap_CircleNotDuplicatedWhenAuthor verifies that a circle whose name
fold-equals an author is not added to the developers a second time. */
func TestMap_CircleNotDuplicatedWhenAuthor(t *testing.T) {
	work := sampleWork()
	work.Authors = []string{"moonlit atelier"}

	mapper := metadata.NewMapper(catalog.NewMemoryLookup(), discardLogger())

	record, err := mapper.Map(context.Background(), work, settings.Default())
	require.NoError(t, err)

	require.Len(t, record.Developers, 1)
	assert.Equal(t, "moonlit atelier", record.Developers[0].Name)
}

/* TestMap_FlagsGateStaffAndFormats verifies that the include flags control
which staff categories and format tags enter the record. */
func TestMap_FlagsGateStaffAndFormats(t *testing.T) {
	mapper := metadata.NewMapper(catalog.NewMemoryLookup(), discardLogger())
	ctx := context.Background()
	work := sampleWork()

	// Defaults: product format only, no optional staff.
	record, err := mapper.Map(ctx, work, settings.Default())
	require.NoError(t, err)
	require.Len(t, record.Features, 1)
	assert.Equal(t, "Voiced Comic", record.Features[0].Name)
	require.Len(t, record.Developers, 2)

	preferences := settings.Default()
	preferences.IncludeFileFormat = true
	preferences.IncludeVoiceActors = true
	preferences.IncludeIllustrators = true

	record, err = mapper.Map(ctx, work, preferences)
	require.NoError(t, err)

	require.Len(t, record.Features, 2)
	assert.Equal(t, "MP4", record.Features[1].Name)

	names := make([]string, 0, len(record.Developers))
	for _, property := range record.Developers {
		names = append(names, property.Name)
	}
	assert.Equal(t, []string{"Aoi Hoshino", "Moonlit Atelier", "Ren Katsuragi", "Suzu Amane", "Mio Kanzaki"}, names)
}

/* TestMap_CommunityScore verifies the 0–5 rating rescales to 0–100 with
rounding and clamping, and that a missing rating yields no score. */
func TestMap_CommunityScore(t *testing.T) {
	mapper := metadata.NewMapper(catalog.NewMemoryLookup(), discardLogger())
	ctx := context.Background()

	work := sampleWork()
	record, err := mapper.Map(ctx, work, settings.Default())
	require.NoError(t, err)
	require.NotNil(t, record.CommunityScore)
	assert.Equal(t, 86, *record.CommunityScore)

	work.Rating = nil
	record, err = mapper.Map(ctx, work, settings.Default())
	require.NoError(t, err)
	assert.Nil(t, record.CommunityScore)

	work.Rating = pointer.To(5.4)
	record, err = mapper.Map(ctx, work, settings.Default())
	require.NoError(t, err)
	require.NotNil(t, record.CommunityScore)
	assert.Equal(t, 100, *record.CommunityScore)
}

/* TestMap_ImagesAndFixedFields verifies the image assignments, the fixed
publisher, and the age/series resolution. */
func TestMap_ImagesAndFixedFields(t *testing.T) {
	mapper := metadata.NewMapper(catalog.NewMemoryLookup(), discardLogger())
	ctx := context.Background()

	record, err := mapper.Map(ctx, sampleWork(), settings.Default())
	require.NoError(t, err)

	assert.Equal(t, "https://img.example/main.jpg", record.CoverImage)
	assert.Equal(t, "https://img.example/sample1.jpg", record.BackgroundImage)

	require.Len(t, record.Publishers, 1)
	assert.Equal(t, "DLsite", record.Publishers[0].Name)

	require.Len(t, record.AgeRatings, 1)
	assert.Equal(t, "Adult", record.AgeRatings[0].Name)

	require.Len(t, record.Series, 1)
	assert.Equal(t, "Whispering Tales", record.Series[0].Name)
}

/* TestMap_NoSamplesNoBackground verifies that a work without gallery samples
produces a record without a background image. */
func TestMap_NoSamplesNoBackground(t *testing.T) {
	work := sampleWork()
	work.SampleImages = nil

	mapper := metadata.NewMapper(catalog.NewMemoryLookup(), discardLogger())

	record, err := mapper.Map(context.Background(), work, settings.Default())
	require.NoError(t, err)
	assert.Empty(t, record.BackgroundImage)
}

/* TestMap_Deterministic verifies mapping the same work twice yields equal
records. */
func TestMap_Deterministic(t *testing.T) {
	lookup := catalog.NewMemoryLookup()
	lookup.Add(catalog.KindGenre, "Fantasy")
	lookup.Add(catalog.KindCompany, "DLsite")

	mapper := metadata.NewMapper(lookup, discardLogger())
	ctx := context.Background()

	first, err := mapper.Map(ctx, sampleWork(), settings.Default())
	require.NoError(t, err)
	second, err := mapper.Map(ctx, sampleWork(), settings.Default())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
