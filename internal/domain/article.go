package domain

// Article is the raw record a caller hands to the SEO engine.
type Article struct {
	ID            string
	Title         string
	Content       string // HTML
	FeaturedImage string
	Source        string
	SEO           SEOOverrides
}

// SEOOverrides holds manually edited SEO fields. Blank fields are derived.
type SEOOverrides struct {
	Slug           string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	SEOTitle       string   `json:"seoTitle,omitempty" yaml:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty" yaml:"seoDescription,omitempty"`
	FocusKeyphrase string   `json:"focusKeyphrase,omitempty" yaml:"focusKeyphrase,omitempty"`
	LSIKeywords    []string `json:"lsiKeywords,omitempty" yaml:"lsiKeywords,omitempty"`
}

// SEOMetadata is the derived record returned for a single article.
type SEOMetadata struct {
	Slug           string   `json:"slug"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	FocusKeyphrase string   `json:"focusKeyphrase"`
	LSIKeywords    []string `json:"lsiKeywords"`
	CTRScore       int      `json:"ctrScore"`
}

// Overrides converts derived metadata back into editable fields, which is
// what the article editor stores after a derivation pass.
func (m SEOMetadata) Overrides() SEOOverrides {
	keywords := make([]string, len(m.LSIKeywords))
	copy(keywords, m.LSIKeywords)

	return SEOOverrides{
		Slug:           m.Slug,
		SEOTitle:       m.SEOTitle,
		SEODescription: m.SEODescription,
		FocusKeyphrase: m.FocusKeyphrase,
		LSIKeywords:    keywords,
	}
}

// Analysis is the richer result used by the article editor.
type Analysis struct {
	SEOMetadata
	ReadabilityScore   int      `json:"readabilityScore"`
	SEOScore           int      `json:"seoScore"`
	KeywordSuggestions []string `json:"keywordSuggestions"`
	AINotes            []string `json:"aiNotes"`
}

// Report pairs an article with its analysis and validation outcome.
type Report struct {
	Article  Article
	Analysis Analysis
	Valid    bool
	Errors   []string
}
