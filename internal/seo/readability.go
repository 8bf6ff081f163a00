package seo

import (
	"strings"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/htmltext"
)

const (
	longSentenceWords     = 20
	veryLongSentenceWords = 30
	longParagraphWords    = 120
	commaRatioLimit       = 0.05
)

// Readability scores plain text from 0 to 100, penalising long sentences,
// long paragraphs and comma-heavy prose. Paragraphs are newline separated.
func Readability(text string) int {
	score := 100

	for _, sentence := range sentences(text) {
		words := wordCount(sentence)
		if words > longSentenceWords {
			score -= 3
		}
		if words > veryLongSentenceWords {
			score -= 3
		}
	}

	for _, paragraph := range htmltext.Paragraphs(text) {
		if wordCount(paragraph) > longParagraphWords {
			score -= 5
		}
	}

	if commas := strings.Count(text, ","); float64(commas) > float64(wordCount(text))*commaRatioLimit {
		score -= 5
	}

	return clampScore(score)
}
