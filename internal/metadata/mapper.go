// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package metadata translates scraped works into catalog-ready records.

# Resolution

Every scraped name is matched against the host catalog case-insensitively
(Unicode fold over NFKC, see pkg/normalize). A hit becomes an id reference;
a miss keeps the scraped name verbatim so the host can create the entity on
its own terms. The mapper never writes to the catalog.

Mapping is deterministic and idempotent: the same work, preferences, and
catalog state always produce the same record, field order included.
*/
package metadata

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/tsukihara/workshelf/internal/catalog"
	"github.com/tsukihara/workshelf/internal/platform/constants"
	"github.com/tsukihara/workshelf/internal/settings"
	"github.com/tsukihara/workshelf/internal/storefront"
	"github.com/tsukihara/workshelf/pkg/normalize"
	"github.com/tsukihara/workshelf/pkg/pointer"
	pkgslice "github.com/tsukihara/workshelf/pkg/slice"
)

// The storefront rates works 0–5; the record carries 0–100.
const (
	storefrontRatingMax = 5
	communityScoreMax   = 100
)

// Mapper resolves scraped works into records using a read-only catalog view.
type Mapper struct {
	lookup catalog.Lookup
	logger *slog.Logger
}

func NewMapper(lookup catalog.Lookup, logger *slog.Logger) *Mapper {
	return &Mapper{lookup: lookup, logger: logger}
}

// Map builds the record for one scraped work under the given preferences.
func (mapper *Mapper) Map(context context.Context, work *storefront.Work, preferences settings.Settings) (*Record, error) {
	record := &Record{
		ProductID:   work.ProductID,
		Name:        work.Title,
		Description: work.Description,
		Icon:        work.Icon,
		CoverImage:  work.MainImage,
		Links:       slices.Clone(work.Links),
		ReleaseDate: work.ReleaseDate,
	}

	// The background is the first gallery sample; works without samples get none.
	if len(work.SampleImages) > 0 {
		record.BackgroundImage = work.SampleImages[0]
	}

	if work.Rating != nil {
		record.CommunityScore = pointer.To(communityScore(*work.Rating))
	}

	var err error

	var features []string
	if preferences.IncludeProductFormat {
		features = append(features, work.ProductFormat...)
	}
	if preferences.IncludeFileFormat {
		features = append(features, work.FileFormat...)
	}
	if record.Features, err = mapper.resolve(context, catalog.KindFeature, features); err != nil {
		return nil, err
	}

	if record.Genres, err = mapper.resolve(context, catalog.KindGenre, work.Genres); err != nil {
		return nil, err
	}

	if record.Developers, err = mapper.resolve(context, catalog.KindCompany, developerNames(work, preferences)); err != nil {
		return nil, err
	}

	if record.Publishers, err = mapper.resolve(context, catalog.KindCompany, []string{constants.StorefrontName}); err != nil {
		return nil, err
	}

	if work.Age != nil {
		if record.AgeRatings, err = mapper.resolve(context, catalog.KindAgeRating, []string{string(*work.Age)}); err != nil {
			return nil, err
		}
	}

	if work.Series != nil {
		if record.Series, err = mapper.resolve(context, catalog.KindSeries, []string{*work.Series}); err != nil {
			return nil, err
		}
	}

	mapper.logger.Debug("work_mapped",
		slog.String("product_id", work.ProductID),
		slog.Int("developers", len(record.Developers)),
		slog.Int("genres", len(record.Genres)),
	)

	return record, nil
}

// resolve turns names into properties in input order, collapsing fold-equal
// duplicates to their first occurrence and dropping blanks.
func (mapper *Mapper) resolve(context context.Context, kind catalog.Kind, names []string) ([]Property, error) {
	deduped := pkgslice.Dedupe(names, normalize.Key)

	var properties []Property
	for _, name := range deduped {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		entity, err := mapper.lookup.FindByName(context, kind, name)
		if err != nil {
			return nil, err
		}

		if entity != nil {
			properties = append(properties, ByID(entity.ID))
		} else {
			properties = append(properties, ByName(name))
		}
	}

	return properties, nil
}

// developerNames assembles the staff list: authors first, then the circle
// unless it already appears among the authors, then the flag-gated categories
// in a fixed order.
func developerNames(work *storefront.Work, preferences settings.Settings) []string {
	names := slices.Clone(work.Authors)

	if circle := pointer.Val(work.Circle); circle != "" {
		if !slices.ContainsFunc(names, func(name string) bool { return normalize.Equal(name, circle) }) {
			names = append(names, circle)
		}
	}

	if preferences.IncludeIllustrators {
		names = append(names, work.Illustrators...)
	}
	if preferences.IncludeScenarioWriters {
		names = append(names, work.ScenarioWriters...)
	}
	if preferences.IncludeMusicCreators {
		names = append(names, work.MusicCreators...)
	}
	if preferences.IncludeVoiceActors {
		names = append(names, work.VoiceActors...)
	}

	return names
}

func communityScore(rating float64) int {
	score := int(math.Round(rating * communityScoreMax / storefrontRatingMax))
	return min(max(score, 0), communityScoreMax)
}
