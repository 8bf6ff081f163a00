// Package seo derives slugs, titles, meta descriptions, keywords and scores
// from raw article fields. Every function is pure and safe for concurrent use.
package seo

import (
	"strings"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

// Defaults used when Options leaves a field at its zero value.
const (
	DefaultBrandName            = "SMP Muhammadiyah 35 Jakarta"
	DefaultSlugMaxWords         = 10
	DefaultDescriptionMaxLength = 160
	DefaultLSILimit             = 5
	DefaultSuggestionLimit      = 8
	maxTitleLength              = 60
)

// Options configures an Engine.
type Options struct {
	BrandName            string
	Lexicon              Lexicon
	SlugMaxWords         int
	DescriptionMaxLength int
	LSILimit             int
	SuggestionLimit      int
}

// Engine holds the immutable configuration shared by all derivations.
type Engine struct {
	brand           string
	brandLower      string
	lexicon         Lexicon
	stopwords       map[string]struct{}
	powerWords      []string
	slugMaxWords    int
	descMaxLength   int
	lsiLimit        int
	suggestionLimit int
}

// New builds an Engine, applying defaults for zero-valued options.
func New(opts Options) *Engine {
	brand := strings.TrimSpace(opts.BrandName)
	if brand == "" {
		brand = DefaultBrandName
	}

	lex := opts.Lexicon.withDefaults()

	return &Engine{
		brand:           brand,
		brandLower:      strings.ToLower(brand),
		lexicon:         lex,
		stopwords:       wordSet(lex.Stopwords),
		powerWords:      foldedList(lex.PowerWords),
		slugMaxWords:    positiveOr(opts.SlugMaxWords, DefaultSlugMaxWords),
		descMaxLength:   positiveOr(opts.DescriptionMaxLength, DefaultDescriptionMaxLength),
		lsiLimit:        positiveOr(opts.LSILimit, DefaultLSILimit),
		suggestionLimit: positiveOr(opts.SuggestionLimit, DefaultSuggestionLimit),
	}
}

// Default returns an Engine with the stock brand and Indonesian lexicon.
func Default() *Engine {
	return New(Options{})
}

// BrandName returns the configured brand.
func (e *Engine) BrandName() string {
	return e.brand
}

// IsStopword reports whether word is in the engine's stopword list.
func (e *Engine) IsStopword(word string) bool {
	_, ok := e.stopwords[strings.ToLower(word)]
	return ok
}

// GenerateArticleSEO derives the SEO metadata for article. Non-blank
// overrides are kept as they are; only missing fields are derived, so running
// it again on its own output changes nothing.
func (e *Engine) GenerateArticleSEO(article domain.Article) domain.SEOMetadata {
	manual := article.SEO

	meta := domain.SEOMetadata{
		Slug:           orDerive(manual.Slug, func() string { return e.Slug(article.Title) }),
		SEOTitle:       orDerive(manual.SEOTitle, func() string { return e.SEOTitle(article.Title) }),
		FocusKeyphrase: orDerive(manual.FocusKeyphrase, func() string { return "" }),
	}
	meta.SEODescription = orDerive(manual.SEODescription, func() string {
		return e.MetaDescription(article.Content, article.Title, meta.FocusKeyphrase)
	})
	meta.LSIKeywords = orDeriveList(manual.LSIKeywords, func() []string {
		return e.LSIKeywords(article.Content, article.Title)
	})
	meta.CTRScore = e.CTRScore(meta.SEOTitle, meta.SEODescription)

	return meta
}

// orDerive keeps a non-blank manual value and otherwise calls derive.
func orDerive(manual string, derive func() string) string {
	if strings.TrimSpace(manual) != "" {
		return manual
	}
	return derive()
}

// orDeriveList keeps a non-empty manual list and otherwise calls derive.
// The result is always a fresh, non-nil slice.
func orDeriveList(manual []string, derive func() []string) []string {
	var src []string
	if len(manual) > 0 {
		src = manual
	} else {
		src = derive()
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
