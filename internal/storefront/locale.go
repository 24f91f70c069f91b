// Copyright (c) 2026 Workshelf. All rights reserved.

package storefront

// Locale selects which rendered language the storefront serves and,
// consequently, which label vocabulary the parser expects.
type Locale string

const (
	LocaleJaJP Locale = "ja_JP"
	LocaleEnUS Locale = "en_US"
	LocaleZhCN Locale = "zh_CN"
	LocaleZhTW Locale = "zh_TW"
	LocaleKoKR Locale = "ko_KR"
)

// DefaultLocale is used when a requested locale has no vocabulary entry.
const DefaultLocale = LocaleEnUS

// vocabulary holds the outline-table row labels for one locale. Adding a
// locale is a data change here, not a parser change.
type vocabulary struct {
	ReleaseDate   string
	Series        string
	Author        string
	Illustration  string
	Scenario      string
	Music         string
	VoiceActor    string
	Age           string
	ProductFormat string
	FileFormat    string
	Genre         string

	// DateLayouts are tried in order against the release-date cell.
	DateLayouts []string
}

var vocabularies = map[Locale]vocabulary{
	LocaleEnUS: {
		ReleaseDate:   "Release date",
		Series:        "Series name",
		Author:        "Author",
		Illustration:  "Illustration",
		Scenario:      "Scenario",
		Music:         "Music",
		VoiceActor:    "Voice Actor",
		Age:           "Age",
		ProductFormat: "Product format",
		FileFormat:    "File format",
		Genre:         "Genre",
		DateLayouts:   []string{"Jan/02/2006", "Jan/2/2006", "Jan 02, 2006"},
	},
	LocaleJaJP: {
		ReleaseDate:   "販売日",
		Series:        "シリーズ名",
		Author:        "作者",
		Illustration:  "イラスト",
		Scenario:      "シナリオ",
		Music:         "音楽",
		VoiceActor:    "声優",
		Age:           "年齢指定",
		ProductFormat: "作品形式",
		FileFormat:    "ファイル形式",
		Genre:         "ジャンル",
		DateLayouts:   []string{"2006年01月02日", "2006年1月2日"},
	},
	LocaleZhCN: {
		ReleaseDate:   "贩卖日",
		Series:        "系列名",
		Author:        "作者",
		Illustration:  "插画",
		Scenario:      "剧本",
		Music:         "音乐",
		VoiceActor:    "声优",
		Age:           "年龄指定",
		ProductFormat: "作品类型",
		FileFormat:    "文件形式",
		Genre:         "分类",
		DateLayouts:   []string{"2006年01月02日", "2006年1月2日"},
	},
	LocaleZhTW: {
		ReleaseDate:   "販賣日",
		Series:        "系列名",
		Author:        "作者",
		Illustration:  "插畫",
		Scenario:      "劇本",
		Music:         "音樂",
		VoiceActor:    "聲優",
		Age:           "年齡指定",
		ProductFormat: "作品類型",
		FileFormat:    "檔案形式",
		Genre:         "分類",
		DateLayouts:   []string{"2006年01月02日", "2006年1月2日"},
	},
	LocaleKoKR: {
		ReleaseDate:   "판매일",
		Series:        "시리즈명",
		Author:        "작가",
		Illustration:  "일러스트",
		Scenario:      "시나리오",
		Music:         "음악",
		VoiceActor:    "성우",
		Age:           "연령 지정",
		ProductFormat: "작품 형식",
		FileFormat:    "파일 형식",
		Genre:         "장르",
		DateLayouts:   []string{"2006년 01월 02일", "2006년 1월 2일"},
	},
}

// vocabularyFor returns the vocabulary for the locale, falling back to
// [DefaultLocale] for unsupported or unspecified locales.
func vocabularyFor(locale Locale) vocabulary {
	if vocab, ok := vocabularies[locale]; ok {
		return vocab
	}
	return vocabularies[DefaultLocale]
}

// IsSupported reports whether the locale has its own parser vocabulary.
func (locale Locale) IsSupported() bool {
	_, ok := vocabularies[locale]
	return ok
}

// ageBadgeSets lists the recognizable age-classification badge texts across
// all supported locales, checked in a fixed order so a cell mentioning more
// than one badge resolves deterministically. Unrecognized text maps to nothing.
var ageBadgeSets = []struct {
	rating AgeRating
	badges []string
}{
	{AgeAllAges, []string{"全年齢", "All ages", "全年龄", "全年齡", "전연령"}},
	{AgeRRated, []string{"R-15", "R15指定", "15+"}},
	{AgeAdult, []string{"18禁", "R-18", "Adult", "18+", "성인"}},
}
