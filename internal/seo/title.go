package seo

import (
	"strings"
	"unicode"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/htmltext"
)

const ellipsis = "..."

// SEOTitle brands title as "{title} | {brand}". An empty title yields the
// brand alone and a title that already names the brand is returned as is.
func (e *Engine) SEOTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return e.brand
	}
	if strings.Contains(title, e.brand) {
		return title
	}

	cleaned := strings.TrimSpace(truncateRunes(htmltext.CollapseWhitespace(title), maxTitleLength))
	return cleaned + " | " + e.brand
}

// MetaDescription synthesises a meta description from content using the
// engine's default length limit.
func (e *Engine) MetaDescription(content, title, keyphrase string) string {
	return e.MetaDescriptionN(content, title, keyphrase, e.descMaxLength)
}

// MetaDescriptionN is MetaDescription with an explicit length limit. The
// result never exceeds maxLength+3 runes.
func (e *Engine) MetaDescriptionN(content, title, keyphrase string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = e.descMaxLength
	}

	plain := htmltext.PlainText(content)
	if plain == "" {
		return truncateDescription(e.fallbackDescription(title), maxLength)
	}

	seed := ""
	if kp := strings.ToLower(strings.TrimSpace(keyphrase)); kp != "" {
		for _, sentence := range sentencesWithPunctuation(plain) {
			if strings.Contains(strings.ToLower(sentence), kp) {
				seed = sentence
				break
			}
		}
	}
	if seed == "" {
		seed = strings.TrimSpace(truncateRunes(plain, maxLength+50))
	}

	if !strings.Contains(strings.ToLower(seed), e.brandLower) {
		seed = e.brand + " - " + seed
	}

	return truncateDescription(seed, maxLength)
}

func (e *Engine) fallbackDescription(title string) string {
	title = htmltext.CollapseWhitespace(title)

	tmpl := e.lexicon.FallbackWithTitle
	if title == "" {
		tmpl = e.lexicon.FallbackGeneric
	}

	return strings.NewReplacer("{title}", title, "{brand}", e.brand).Replace(tmpl)
}

// truncateDescription cuts s to maxLength runes, preferring the last word
// boundary past 80% of the limit, and marks the cut with an ellipsis.
func truncateDescription(s string, maxLength int) string {
	if runeLen(s) <= maxLength {
		return s
	}

	cut := truncateRunes(s, maxLength)
	if idx := strings.LastIndexFunc(cut, unicode.IsSpace); idx > 0 {
		if float64(runeLen(cut[:idx])) > float64(maxLength)*0.8 {
			cut = cut[:idx]
		}
	}

	return strings.TrimRightFunc(cut, unicode.IsSpace) + ellipsis
}
