// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package settings holds the user-tunable sync preferences.

Settings are loaded once per sync cycle and treated as an immutable snapshot
for its duration. Mutation happens only through an [EditSession], the
scoped-mutation contract: snapshot before edit, commit or revert on exit,
no ambient mutable state.
*/
package settings

import (
	"github.com/tsukihara/workshelf/internal/storefront"
)

// Settings are the persisted sync preferences.
//
// The Include flags gate optional staff categories and format tags: each flag
// independently toggles whether that category's names enter the mapped output.
type Settings struct {
	// PageLocale selects the storefront rendering language for scrapes.
	PageLocale storefront.Locale `json:"page_locale"`

	IncludeIllustrators    bool `json:"include_illustrators"`
	IncludeScenarioWriters bool `json:"include_scenario_writers"`
	IncludeMusicCreators   bool `json:"include_music_creators"`
	IncludeVoiceActors     bool `json:"include_voice_actors"`

	IncludeProductFormat bool `json:"include_product_format"`
	IncludeFileFormat    bool `json:"include_file_format"`
}

// Default returns the out-of-the-box preferences: English pages with product
// format tags included.
func Default() Settings {
	return Settings{
		PageLocale:           storefront.DefaultLocale,
		IncludeProductFormat: true,
	}
}
