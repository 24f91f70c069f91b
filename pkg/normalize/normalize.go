// Copyright (c) 2026 Workshelf. All rights reserved.

// Package normalize produces canonical comparison keys for entity names.
//
// # Usage
//
// Scraped names are reconciled against catalog entities by case-insensitive
// equality. The storefront renders Japanese text where the same name can appear
// in full-width or half-width forms, so plain lowercasing is not enough.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// folder performs Unicode case folding, the correct notion of
// case-insensitivity across scripts (e.g. "ß" folds to "ss").
var folder = cases.Fold()

// Key converts a display name into its canonical comparison key.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Normalizes to NFKC (unifies full-width/half-width compatibility forms).
// 3. Applies Unicode case folding.
//
// The original display casing is never stored through this function; callers
// keep the raw string for presentation and use the key only for matching.
func Key(s string) string {
	return folder.String(norm.NFKC.String(strings.TrimSpace(s)))
}

// Equal reports whether two display names refer to the same entity under
// the canonical comparison rules.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}
