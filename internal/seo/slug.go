package seo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug turns title into a URL slug using the engine's default word limit.
// It returns "" when nothing survives filtering; callers pick their own fallback.
func (e *Engine) Slug(title string) string {
	return e.SlugN(title, e.slugMaxWords)
}

// SlugN is Slug with an explicit word limit. maxWords <= 0 uses the default.
func (e *Engine) SlugN(title string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = e.slugMaxWords
	}

	cleaned := strings.Map(slugRune, strings.ToLower(stripDiacritics(title)))

	words := make([]string, 0, maxWords)
	for _, word := range strings.Fields(cleaned) {
		if e.IsStopword(word) {
			continue
		}
		words = append(words, word)
		if len(words) == maxWords {
			break
		}
	}

	return strings.Join(words, "-")
}

// stripDiacritics decomposes s and drops combining marks ("é" -> "e").
func stripDiacritics(s string) string {
	// transform chains keep state, so one is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// slugRune keeps ASCII letters and digits, turns separators into spaces and
// drops everything else. Hyphens and underscores split words so that every
// kept word becomes exactly one slug segment.
func slugRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return r
	case r == '-' || r == '_' || unicode.IsSpace(r):
		return ' '
	default:
		return -1
	}
}
