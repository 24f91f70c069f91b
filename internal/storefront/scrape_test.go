// Copyright (c) 2026 Workshelf. All rights reserved.

package storefront_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukihara/workshelf/internal/platform/apperr"
	"github.com/tsukihara/workshelf/internal/storefront"
)

const productPageEN = `<!DOCTYPE html>
<html>
<head><meta property="og:image" content="https://img.example.com/RJ123456_icon.jpg"></head>
<body>
<div id="work_left">
  <div class="product-slider-data">
    <div data-src="https://img.example.com/RJ123456_main.jpg"></div>
    <div data-src="https://img.example.com/RJ123456_smp1.jpg"></div>
    <div data-src="https://img.example.com/RJ123456_smp2.jpg"></div>
  </div>
</div>
<h1 id="work_name">Whispering Dungeon</h1>
<div id="work_maker">
  <span class="maker_name"><a href="https://store.example.com/circle/RG11111">Moonlit Atelier</a></span>
</div>
<span class="point average_count">4.3 (1,021)</span>
<div itemprop="description">
  Explore a dungeon that whispers back.
</div>
<table id="work_outline">
<tr><th>Release date</th><td>Feb/14/2024 00:00</td></tr>
<tr><th>Series name</th><td>Whispering Tales</td></tr>
<tr><th>Author</th><td><a href="#">Aoi Kisaragi</a></td></tr>
<tr><th>Illustration</th><td><a href="#">Ren Futaba</a></td></tr>
<tr><th>Scenario</th><td><a href="#">Aoi Kisaragi</a></td></tr>
<tr><th>Music</th><td><a href="#">hikari-note</a></td></tr>
<tr><th>Voice Actor</th><td><a href="#">Suzu Amane</a><a href="#">Mio Kanzaki</a></td></tr>
<tr><th>Age</th><td><span class="icon_ADL">18+</span></td></tr>
<tr><th>Product format</th><td><span>Voice / ASMR</span></td></tr>
<tr><th>File format</th><td><span>WAV</span><span>MP3</span></td></tr>
<tr><th>Genre</th><td><div class="main_genre"><a href="#">Fantasy</a><a href="#">Healing</a></div></td></tr>
</table>
</body>
</html>`

const productPageJA = `<!DOCTYPE html>
<html>
<body>
<h1 id="work_name">ささやきダンジョン</h1>
<span class="point average_count">4,3</span>
<table id="work_outline">
<tr><th>販売日</th><td>2024年02月14日</td></tr>
<tr><th>シリーズ名</th><td>ささやき物語</td></tr>
<tr><th>声優</th><td><a href="#">天音すず</a></td></tr>
<tr><th>年齢指定</th><td><span>18禁</span></td></tr>
<tr><th>ジャンル</th><td><a href="#">ファンタジー</a></td></tr>
</table>
</body>
</html>`

const productPageBare = `<!DOCTYPE html>
<html><body><h1 id="work_name">Bare Work</h1></body></html>`

func newScrapeServer(t *testing.T, pages map[string]string) (*httptest.Server, *storefront.Scraper) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		for productID, page := range pages {
			if request.URL.Path == "/home/work/=/product_id/"+productID+".html" {
				_, _ = writer.Write([]byte(page))
				return
			}
		}
		writer.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := storefront.NewClient(server.URL, 5*time.Second)
	return server, storefront.NewScraper(client, discardLogger())
}

/*
TestScrapeWork_FullPage exercises every extracted field against the English
fixture page.
*/
func TestScrapeWork_FullPage(t *testing.T) {
	_, scraper := newScrapeServer(t, map[string]string{"RJ123456": productPageEN})

	work, err := scraper.ScrapeWork(context.Background(), "RJ123456", storefront.LocaleEnUS)
	require.NoError(t, err)

	assert.Equal(t, "RJ123456", work.ProductID)
	assert.Equal(t, "Whispering Dungeon", work.Title)
	assert.Equal(t, "Explore a dungeon that whispers back.", work.Description)
	assert.Equal(t, "https://img.example.com/RJ123456_icon.jpg", work.Icon)

	// Cover is the first gallery entry; the ordered remainder is preserved.
	assert.Equal(t, "https://img.example.com/RJ123456_main.jpg", work.MainImage)
	assert.Equal(t, []string{
		"https://img.example.com/RJ123456_smp1.jpg",
		"https://img.example.com/RJ123456_smp2.jpg",
	}, work.SampleImages)

	require.NotNil(t, work.Rating)
	assert.InDelta(t, 4.3, *work.Rating, 0.001)

	require.NotNil(t, work.ReleaseDate)
	assert.Equal(t, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC), *work.ReleaseDate)

	require.NotNil(t, work.Age)
	assert.Equal(t, storefront.AgeAdult, *work.Age)

	require.NotNil(t, work.Circle)
	assert.Equal(t, "Moonlit Atelier", *work.Circle)
	assert.Equal(t, []string{"Aoi Kisaragi"}, work.Authors)
	assert.Equal(t, []string{"Ren Futaba"}, work.Illustrators)
	assert.Equal(t, []string{"Aoi Kisaragi"}, work.ScenarioWriters)
	assert.Equal(t, []string{"hikari-note"}, work.MusicCreators)
	assert.Equal(t, []string{"Suzu Amane", "Mio Kanzaki"}, work.VoiceActors)

	require.NotNil(t, work.Series)
	assert.Equal(t, "Whispering Tales", *work.Series)

	assert.Equal(t, []string{"Fantasy", "Healing"}, work.Genres)
	assert.Equal(t, []string{"Voice / ASMR"}, work.ProductFormat)
	assert.Equal(t, []string{"WAV", "MP3"}, work.FileFormat)

	require.Len(t, work.Links, 2)
	assert.Equal(t, "DLsite", work.Links[0].Label)
	assert.Equal(t, "Moonlit Atelier", work.Links[1].Label)
	assert.Equal(t, "https://store.example.com/circle/RG11111", work.Links[1].URL)
}

/*
TestScrapeWork_JapaneseLocale verifies the locale vocabulary selects the
Japanese labels and that comma decimal separators parse.
*/
func TestScrapeWork_JapaneseLocale(t *testing.T) {
	_, scraper := newScrapeServer(t, map[string]string{"RJ123456": productPageJA})

	work, err := scraper.ScrapeWork(context.Background(), "RJ123456", storefront.LocaleJaJP)
	require.NoError(t, err)

	assert.Equal(t, "ささやきダンジョン", work.Title)

	require.NotNil(t, work.Rating)
	assert.InDelta(t, 4.3, *work.Rating, 0.001)

	require.NotNil(t, work.ReleaseDate)
	assert.Equal(t, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC), *work.ReleaseDate)

	require.NotNil(t, work.Series)
	assert.Equal(t, "ささやき物語", *work.Series)

	require.NotNil(t, work.Age)
	assert.Equal(t, storefront.AgeAdult, *work.Age)

	assert.Equal(t, []string{"天音すず"}, work.VoiceActors)
	assert.Equal(t, []string{"ファンタジー"}, work.Genres)
}

/*
TestScrapeWork_UnsupportedLocaleFallsBack verifies an unknown locale parses
with the default (English) vocabulary.
*/
func TestScrapeWork_UnsupportedLocaleFallsBack(t *testing.T) {
	_, scraper := newScrapeServer(t, map[string]string{"RJ123456": productPageEN})

	work, err := scraper.ScrapeWork(context.Background(), "RJ123456", storefront.Locale("sv_SE"))
	require.NoError(t, err)

	require.NotNil(t, work.Series)
	assert.Equal(t, "Whispering Tales", *work.Series)
	assert.Equal(t, []string{"Fantasy", "Healing"}, work.Genres)
}

/*
TestScrapeWork_BarePage verifies missing markers yield zero values, never a
parse failure — including an empty image gallery and no age badge.
*/
func TestScrapeWork_BarePage(t *testing.T) {
	_, scraper := newScrapeServer(t, map[string]string{"RJ000001": productPageBare})

	work, err := scraper.ScrapeWork(context.Background(), "RJ000001", storefront.LocaleEnUS)
	require.NoError(t, err)

	assert.Equal(t, "Bare Work", work.Title)
	assert.Empty(t, work.MainImage)
	assert.Empty(t, work.SampleImages)
	assert.Nil(t, work.Rating)
	assert.Nil(t, work.ReleaseDate)
	assert.Nil(t, work.Age)
	assert.Nil(t, work.Circle)
	assert.Nil(t, work.Series)
	assert.Empty(t, work.Genres)
}

/*
TestScrapeWork_FetchFailureIsScoped verifies a missing page reports
SCRAPE_FAILED for that one product.
*/
func TestScrapeWork_FetchFailureIsScoped(t *testing.T) {
	_, scraper := newScrapeServer(t, map[string]string{})

	_, err := scraper.ScrapeWork(context.Background(), "RJ404404", storefront.LocaleEnUS)
	require.Error(t, err)
	assert.Equal(t, "SCRAPE_FAILED", apperr.CodeOf(err))
}
