package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

func TestEngineAnalyze_WellOptimisedArticle(t *testing.T) {
	t.Parallel()

	engine := Default()
	article := domain.Article{
		Title: "Program Tahfidz Unggulan",
		Content: "<p>Program tahfidz dimulai pekan ini.</p><p>" +
			strings.Repeat("Siswa belajar dengan tekun setiap hari. ", 60) +
			`Tahfidz menjadi kebanggaan.</p><img src="wisuda.jpg" alt="Wisuda tahfidz">`,
		FeaturedImage: "wisuda.jpg",
		SEO:           domain.SEOOverrides{FocusKeyphrase: "tahfidz"},
	}

	analysis := engine.Analyze(article)

	assert.Equal(t, "program-tahfidz-unggulan", analysis.Slug)
	assert.Equal(t, "SMP Muhammadiyah 35 Jakarta - Program tahfidz dimulai pekan ini.", analysis.SEODescription)
	assert.Equal(t, 95, analysis.ReadabilityScore)
	assert.Equal(t, 100, analysis.SEOScore)
	assert.LessOrEqual(t, len(analysis.KeywordSuggestions), DefaultSuggestionLimit)
	assert.Contains(t, analysis.KeywordSuggestions, "siswa")
	assert.NotNil(t, analysis.AINotes)
	assert.Empty(t, analysis.AINotes)
}

func TestEngineAnalyze_MissingKeyphrase(t *testing.T) {
	t.Parallel()

	engine := Default()
	analysis := engine.Analyze(domain.Article{
		Title:   "Kegiatan Tahfidz",
		Content: "<p>Kegiatan rutin setiap pagi.</p>",
	})

	assert.Equal(t, "", analysis.FocusKeyphrase)
	require.NotEmpty(t, analysis.AINotes)
	assert.Equal(t, "Set a focus keyphrase so the article can be scored against it.", analysis.AINotes[0])
	assertNotesWellFormed(t, analysis.AINotes)
}

func TestEngineAnalyze_EmptyArticle(t *testing.T) {
	t.Parallel()

	analysis := Default().Analyze(domain.Article{})

	assert.Equal(t, 100, analysis.ReadabilityScore)
	assert.Equal(t, 10, analysis.SEOScore)
	assert.Empty(t, analysis.KeywordSuggestions)
	assert.Contains(t, analysis.AINotes, "The title produced an empty slug; set one manually.")
	assertNotesWellFormed(t, analysis.AINotes)
}

func TestEngineAnalyze_KeyphraseNotes(t *testing.T) {
	t.Parallel()

	analysis := Default().Analyze(domain.Article{
		Title:   "Berita Sekolah",
		Content: "<p>" + strings.Repeat("pramuka ", 20) + "</p>",
		SEO:     domain.SEOOverrides{FocusKeyphrase: "pramuka"},
	})

	assert.Contains(t, analysis.AINotes, `Use the focus keyphrase "pramuka" in the title.`)
	assert.Contains(t, analysis.AINotes, "Include the focus keyphrase in the slug.")
	assertNotesWellFormed(t, analysis.AINotes)

	var sawDensity bool
	for _, note := range analysis.AINotes {
		if strings.HasPrefix(note, "Keyphrase density") {
			sawDensity = true
		}
	}
	assert.True(t, sawDensity)
}

func TestNoteList(t *testing.T) {
	t.Parallel()

	var n noteList
	n.add("a")
	n.add("a")
	n.add(" ")
	for i := 0; i < 20; i++ {
		n.add(strings.Repeat("x", i+1))
	}

	assert.Len(t, n.items, maxNotes)
	assert.Equal(t, "a", n.items[0])
}

func assertNotesWellFormed(t *testing.T, notes []string) {
	t.Helper()

	assert.LessOrEqual(t, len(notes), maxNotes)
	seen := map[string]bool{}
	for _, note := range notes {
		assert.False(t, seen[note], "duplicate note %q", note)
		seen[note] = true
	}
}
