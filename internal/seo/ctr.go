package seo

import (
	"strings"
	"unicode"
)

const (
	ctrBase          = 50
	powerWordPoints  = 5
	powerWordCeiling = 20
)

// CTRScore estimates from 0 to 100 how likely a search result with this title
// and description is to be clicked.
func (e *Engine) CTRScore(title, description string) int {
	score := ctrBase

	switch n := runeLen(title); {
	case n >= 50 && n <= 60:
		score += 15
	case n >= 40 && n <= 70:
		score += 10
	case n < 30:
		score -= 10
	case n > 80:
		score -= 15
	}

	lower := strings.ToLower(title)
	boost := 0
	for _, word := range e.powerWords {
		if strings.Contains(lower, word) {
			boost += powerWordPoints
		}
	}
	score += min(boost, powerWordCeiling)

	if strings.IndexFunc(title, unicode.IsDigit) >= 0 {
		score += 10
	}
	if strings.Contains(title, "?") {
		score += 5
	}

	if n := runeLen(description); n >= 120 && n <= 160 {
		score += 10
	}

	return clampScore(score)
}
