package seo

import (
	"regexp"
	"strings"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/htmltext"
)

const (
	introFallbackRunes = 200
	minContentWords    = 300
	goodReadability    = 70
	maxKeywordDensity  = 0.035
)

var altAttribute = regexp.MustCompile(`(?i)\balt\s*=\s*["']`)

// ScoreInput is everything the on-page SEO score looks at.
type ScoreInput struct {
	Title            string
	ContentText      string // newline separated paragraphs
	ContentHTML      string
	FocusKeyphrase   string
	MetaDescription  string
	Slug             string
	FeaturedImage    string
	ReadabilityScore int
}

// scoreChecks records the outcome of every on-page check so that the score
// and the editor notes agree.
type scoreChecks struct {
	hasKeyphrase     bool
	inTitle          bool
	inIntro          bool
	inDescription    bool
	inSlug           bool
	longContent      bool
	repeated         bool
	hasAltText       bool
	readable         bool
	overOptimized    bool
	hasFeaturedImage bool
	density          float64
	wordCount        int
	occurrences      int
}

// SEOScore rates on-page optimisation from 0 to 100.
func (e *Engine) SEOScore(in ScoreInput) int {
	return runChecks(in).score()
}

func runChecks(in ScoreInput) scoreChecks {
	c := scoreChecks{
		wordCount:        wordCount(in.ContentText),
		hasAltText:       altAttribute.MatchString(in.ContentHTML),
		readable:         in.ReadabilityScore >= goodReadability,
		hasFeaturedImage: strings.TrimSpace(in.FeaturedImage) != "",
	}
	c.longContent = c.wordCount > minContentWords

	kp := strings.ToLower(strings.TrimSpace(in.FocusKeyphrase))
	if kp == "" {
		return c
	}
	c.hasKeyphrase = true

	c.inTitle = strings.Contains(strings.ToLower(in.Title), kp)
	c.inIntro = strings.Contains(strings.ToLower(intro(in.ContentText)), kp)
	c.inDescription = strings.Contains(strings.ToLower(in.MetaDescription), kp)
	c.inSlug = strings.Contains(strings.ToLower(in.Slug), strings.Join(strings.Fields(kp), "-"))

	c.occurrences = countWholeWord(in.ContentText, kp)
	c.repeated = c.occurrences > 1

	if c.wordCount > 0 {
		c.density = float64(c.occurrences*len(strings.Fields(kp))) / float64(c.wordCount)
		c.overOptimized = c.density > maxKeywordDensity
	}

	return c
}

func (c scoreChecks) score() int {
	score := 0
	add := func(ok bool, points int) {
		if ok {
			score += points
		}
	}

	add(c.inTitle, 20)
	add(c.inIntro, 20)
	add(c.inDescription, 10)
	add(c.inSlug, 10)
	add(c.longContent, 10)
	add(c.repeated, 10)
	add(c.hasAltText, 10)
	add(c.readable, 10)
	add(c.overOptimized, -5)

	return clampScore(score)
}

// intro is the first paragraph of text, or its first 200 runes when the
// text is a single block.
func intro(text string) string {
	if paragraphs := htmltext.Paragraphs(text); len(paragraphs) > 1 {
		return paragraphs[0]
	}
	return truncateRunes(htmltext.CollapseWhitespace(text), introFallbackRunes)
}

// countWholeWord counts case-insensitive whole-word occurrences of phrase.
func countWholeWord(text, phrase string) int {
	if phrase == "" || text == "" {
		return 0
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}
