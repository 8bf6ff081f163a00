package seo

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	sentenceSpan  = regexp.MustCompile(`[^.!?]+[.!?]*`)
)

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// tokens lowercases s, drops everything but letters, digits and whitespace,
// and splits on whitespace.
func tokens(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)
	return strings.Fields(cleaned)
}

// sentences splits text on runs of '.', '!' and '?' and drops blank pieces.
func sentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// sentencesWithPunctuation is like sentences but keeps the terminators.
func sentencesWithPunctuation(text string) []string {
	var out []string
	for _, s := range sentenceSpan.FindAllString(text, -1) {
		if s = strings.TrimSpace(s); strings.Trim(s, ".!? ") != "" {
			out = append(out, s)
		}
	}
	return out
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
