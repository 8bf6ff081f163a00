// Package htmltext turns article HTML into the plain text the SEO engine scores.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// blockSelector lists elements that start a new line of text.
const blockSelector = "p, div, li, ul, ol, h1, h2, h3, h4, h5, h6, blockquote, pre, section, article, header, footer, tr, td, th, table, figure, figcaption"

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "figure", "figcaption", "div", "span")
	return p
}

// Text returns the visible text of raw, one block element per line.
// Lines are whitespace-collapsed and blank lines are dropped.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if !strings.Contains(trimmed, "<") {
		return normalizeLines(trimmed)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(policy.Sanitize(trimmed)))
	if err != nil {
		return normalizeLines(trimmed)
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.BeforeHtml("\n")
		s.AfterHtml("\n")
	})

	return normalizeLines(doc.Text())
}

// PlainText returns the visible text of raw collapsed onto a single line.
func PlainText(raw string) string {
	return CollapseWhitespace(Text(raw))
}

// Paragraphs splits text produced by Text into its non-empty lines.
func Paragraphs(text string) []string {
	lines := strings.Split(text, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// CollapseWhitespace trims s and replaces whitespace runs with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = CollapseWhitespace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
