package seo

import (
	"fmt"
	"strings"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/htmltext"
)

const maxNotes = 10

// Analyze runs the full editor pass: derived metadata plus readability, SEO
// score, keyword suggestions and advisory notes. The focus keyphrase is
// never invented; a missing one is reported as a note instead.
func (e *Engine) Analyze(article domain.Article) domain.Analysis {
	meta := e.GenerateArticleSEO(article)
	text := htmltext.Text(article.Content)
	readability := Readability(text)

	checks := runChecks(ScoreInput{
		Title:            article.Title,
		ContentText:      text,
		ContentHTML:      article.Content,
		FocusKeyphrase:   meta.FocusKeyphrase,
		MetaDescription:  meta.SEODescription,
		Slug:             meta.Slug,
		FeaturedImage:    article.FeaturedImage,
		ReadabilityScore: readability,
	})

	return domain.Analysis{
		SEOMetadata:        meta,
		ReadabilityScore:   readability,
		SEOScore:           checks.score(),
		KeywordSuggestions: e.Keywords(article.Content, article.Title, e.suggestionLimit),
		AINotes:            e.notes(meta, checks, readability),
	}
}

func (e *Engine) notes(meta domain.SEOMetadata, c scoreChecks, readability int) []string {
	var n noteList

	if !c.hasKeyphrase {
		n.add("Set a focus keyphrase so the article can be scored against it.")
	} else {
		if !c.inTitle {
			n.add(fmt.Sprintf("Use the focus keyphrase %q in the title.", meta.FocusKeyphrase))
		}
		if !c.inIntro {
			n.add("Mention the focus keyphrase in the opening paragraph.")
		}
		if !c.inDescription {
			n.add("Include the focus keyphrase in the meta description.")
		}
		if !c.inSlug {
			n.add("Include the focus keyphrase in the slug.")
		}
		if !c.repeated {
			n.add("Repeat the focus keyphrase naturally in the body text.")
		}
		if c.overOptimized {
			n.add(fmt.Sprintf("Keyphrase density is %.1f%%; reduce repetition to stay under %.1f%%.",
				c.density*100, maxKeywordDensity*100))
		}
	}

	if !c.longContent {
		n.add(fmt.Sprintf("Content has %d words; aim for more than %d.", c.wordCount, minContentWords))
	}
	if readability < goodReadability {
		n.add(fmt.Sprintf("Readability is %d; shorten long sentences and paragraphs.", readability))
	}
	if !c.hasAltText {
		n.add("Add alt text to images in the content.")
	}
	if !c.hasFeaturedImage {
		n.add("Add a featured image.")
	}
	if meta.Slug == "" {
		n.add("The title produced an empty slug; set one manually.")
	}

	for _, msg := range Validate(meta).Errors {
		n.add(msg)
	}

	if n.items == nil {
		return []string{}
	}
	return n.items
}

// noteList keeps notes unique and bounded.
type noteList struct {
	items []string
	seen  map[string]struct{}
}

func (n *noteList) add(note string) {
	note = strings.TrimSpace(note)
	if note == "" || len(n.items) >= maxNotes {
		return
	}
	if n.seen == nil {
		n.seen = map[string]struct{}{}
	}
	if _, ok := n.seen[note]; ok {
		return
	}
	n.seen[note] = struct{}{}
	n.items = append(n.items, note)
}
