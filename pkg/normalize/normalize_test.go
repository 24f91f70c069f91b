// Copyright (c) 2026 Workshelf. All rights reserved.

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsukihara/workshelf/pkg/normalize"
)

/*
TestKey_CaseFolding verifies that keys are case-insensitive.
*/
func TestKey_CaseFolding(t *testing.T) {
	assert.Equal(t, normalize.Key("DLsite"), normalize.Key("dlsite"))
	assert.Equal(t, normalize.Key("STRASSE"), normalize.Key("straße"))
}

/*
TestKey_WidthNormalization verifies that full-width storefront text matches
its half-width catalog counterpart.
*/
func TestKey_WidthNormalization(t *testing.T) {
	// Full-width "ＲＰＧ" as rendered on Japanese product pages.
	assert.Equal(t, normalize.Key("ＲＰＧ"), normalize.Key("rpg"))
}

/*
TestKey_Whitespace verifies surrounding whitespace is ignored for matching.
*/
func TestKey_Whitespace(t *testing.T) {
	assert.True(t, normalize.Equal("  Voice Drama ", "voice drama"))
	assert.False(t, normalize.Equal("Voice Drama", "Voice"))
}
