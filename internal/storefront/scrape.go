// Copyright (c) 2026 Workshelf. All rights reserved.

package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tsukihara/workshelf/internal/platform/apperr"
	"github.com/tsukihara/workshelf/internal/platform/constants"
	"github.com/tsukihara/workshelf/pkg/slice"
)

// Scraper retrieves one product page and extracts a [Work] record.
//
// Extraction policy is "best effort, never throw": only the page retrieval
// itself can fail; once markup is in hand, every field is optional.
type Scraper struct {
	client *Client
	logger *slog.Logger
}

func NewScraper(client *Client, logger *slog.Logger) *Scraper {
	return &Scraper{client: client, logger: logger}
}

// ScrapeWork fetches and parses the product page for productID in the
// requested locale. Product pages are public, so no session is attached.
//
// Transport errors and non-2xx statuses return [apperr.ScrapeFailed] scoped
// to this one product; sibling scrapes are unaffected.
func (scraper *Scraper) ScrapeWork(context context.Context, productID string, locale Locale) (*Work, error) {
	pageURL := scraper.client.workURL(productID, locale)

	response, err := scraper.client.get(context, pageURL, "")
	if err != nil {
		return nil, apperr.ScrapeFailed(productID, err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, apperr.ScrapeFailed(productID, fmt.Errorf("product page returned status %d", response.StatusCode))
	}

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, apperr.ScrapeFailed(productID, err)
	}

	work := parseWork(document, productID, pageURL, locale)
	scraper.logger.Debug("work_scraped",
		slog.String("product_id", productID),
		slog.String("locale", string(locale)),
	)
	return work, nil
}

// parseWork extracts every field the page offers. Markers absent from the
// page leave the corresponding field at its zero value.
func parseWork(document *goquery.Document, productID string, pageURL string, locale Locale) *Work {
	vocab := vocabularyFor(locale)
	work := &Work{ProductID: productID}

	work.Title = cleanText(document.Find("#work_name").First().Text())
	work.Description = cleanText(document.Find(`div[itemprop="description"]`).First().Text())

	if icon, ok := document.Find(`meta[property="og:image"]`).Attr("content"); ok {
		work.Icon = icon
	}

	// Image gallery: the first entry is the designated cover; the ordered
	// remainder feeds the background/sample list. An empty gallery is legal
	// and must not be indexed into.
	gallery := make([]string, 0, 4)
	document.Find("#work_left .product-slider-data div").Each(func(_ int, entry *goquery.Selection) {
		if src, ok := entry.Attr("data-src"); ok && src != "" {
			gallery = append(gallery, src)
		}
	})
	if len(gallery) > 0 {
		work.MainImage = gallery[0]
		work.SampleImages = gallery[1:]
	}

	circleAnchor := document.Find("#work_maker .maker_name a").First()
	if circle := cleanText(circleAnchor.Text()); circle != "" {
		work.Circle = &circle
	}

	work.Rating = parseRating(document.Find("span.point.average_count").First().Text())

	// The work outline table drives everything label-addressed. Row labels
	// are locale-dependent, hence the vocabulary lookup above.
	document.Find("#work_outline tr").Each(func(_ int, row *goquery.Selection) {
		label := cleanText(row.Find("th").First().Text())
		cell := row.Find("td").First()

		switch label {
		case vocab.ReleaseDate:
			work.ReleaseDate = parseReleaseDate(cleanText(cell.Text()), vocab.DateLayouts)
		case vocab.Series:
			if series := cleanText(cell.Text()); series != "" {
				work.Series = &series
			}
		case vocab.Author:
			work.Authors = cellValues(cell)
		case vocab.Illustration:
			work.Illustrators = cellValues(cell)
		case vocab.Scenario:
			work.ScenarioWriters = cellValues(cell)
		case vocab.Music:
			work.MusicCreators = cellValues(cell)
		case vocab.VoiceActor:
			work.VoiceActors = cellValues(cell)
		case vocab.Age:
			work.Age = parseAge(cleanText(cell.Text()))
		case vocab.ProductFormat:
			work.ProductFormat = cellValues(cell)
		case vocab.FileFormat:
			work.FileFormat = cellValues(cell)
		case vocab.Genre:
			work.Genres = cellValues(cell)
		}
	})

	// Outbound links, source order preserved: the product page itself, then
	// the circle's page when one is linked.
	work.Links = append(work.Links, Link{Label: constants.StorefrontName, URL: pageURL})
	if href, ok := circleAnchor.Attr("href"); ok && work.Circle != nil {
		work.Links = append(work.Links, Link{Label: *work.Circle, URL: href})
	}

	return work
}

// cellValues extracts the list of names from an outline cell. Cells carry
// either anchor-per-name markup, span-per-name badges, or plain text.
func cellValues(cell *goquery.Selection) []string {
	values := make([]string, 0, 2)

	cell.Find("a").Each(func(_ int, anchor *goquery.Selection) {
		if value := cleanText(anchor.Text()); value != "" {
			values = append(values, value)
		}
	})

	if len(values) == 0 {
		cell.Find("span").Each(func(_ int, span *goquery.Selection) {
			if value := cleanText(span.Text()); value != "" {
				values = append(values, value)
			}
		})
	}

	if len(values) == 0 {
		if value := cleanText(cell.Text()); value != "" {
			values = append(values, value)
		}
	}

	return slice.Dedupe(values, func(value string) string { return value })
}

var ratingPattern = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)?`)

// parseRating extracts the numeric community rating, tolerating
// locale-specific decimal separators and surrounding text such as vote
// counts. Unparsable text yields nil, not an error.
func parseRating(text string) *float64 {
	match := ratingPattern.FindString(text)
	if match == "" {
		return nil
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &value
}

// parseReleaseDate tries each locale layout against the cell text. The cell
// may carry a trailing annotation, so a prefix match on the first field is
// attempted as a fallback.
func parseReleaseDate(text string, layouts []string) *time.Time {
	candidates := []string{text}
	if first, _, found := strings.Cut(text, " "); found {
		candidates = append(candidates, first)
	}

	for _, layout := range layouts {
		for _, candidate := range candidates {
			if parsed, err := time.Parse(layout, candidate); err == nil {
				return &parsed
			}
		}
	}
	return nil
}

// parseAge reduces the age cell text to the fixed badge vocabulary.
func parseAge(text string) *AgeRating {
	for _, set := range ageBadgeSets {
		for _, badge := range set.badges {
			if strings.Contains(text, badge) {
				rating := set.rating
				return &rating
			}
		}
	}
	return nil
}

// cleanText collapses runs of whitespace (product pages are indentation-heavy).
func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
