package seo

import (
	"sort"
	"unicode/utf8"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/htmltext"
)

const (
	lsiMinRunes        = 4
	suggestionMinRunes = 3
)

// LSIKeywords returns up to the engine's LSI limit of frequent content words
// longer than three characters.
func (e *Engine) LSIKeywords(content, title string) []string {
	return e.rankKeywords(content, title, lsiMinRunes, e.lsiLimit)
}

// Keywords is the editor variant: words longer than two characters, up to
// limit results. limit <= 0 uses the engine's suggestion limit.
func (e *Engine) Keywords(content, title string, limit int) []string {
	if limit <= 0 {
		limit = e.suggestionLimit
	}
	return e.rankKeywords(content, title, suggestionMinRunes, limit)
}

// rankKeywords counts candidate words and orders them by descending
// frequency. Ties keep the order in which the words first appeared.
func (e *Engine) rankKeywords(content, title string, minRunes, limit int) []string {
	text := htmltext.PlainText(title + " " + content)

	type candidate struct {
		word  string
		count int
	}

	var ranked []*candidate
	index := map[string]*candidate{}
	for _, tok := range tokens(text) {
		if utf8.RuneCountInString(tok) < minRunes || e.IsStopword(tok) {
			continue
		}
		if c, ok := index[tok]; ok {
			c.count++
			continue
		}
		c := &candidate{word: tok, count: 1}
		index[tok] = c
		ranked = append(ranked, c)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.word)
	}
	return out
}
