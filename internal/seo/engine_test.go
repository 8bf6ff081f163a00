package seo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

func TestEngineGenerateArticleSEO_EmptyArticle(t *testing.T) {
	t.Parallel()

	engine := Default()
	meta := engine.GenerateArticleSEO(domain.Article{})

	assert.Equal(t, "", meta.Slug)
	assert.Equal(t, DefaultBrandName, meta.SEOTitle)
	assert.Contains(t, meta.SEODescription, "kegiatan sekolah")
	assert.Equal(t, "", meta.FocusKeyphrase)
	assert.NotNil(t, meta.LSIKeywords)
	assert.Empty(t, meta.LSIKeywords)
	assert.Equal(t, engine.CTRScore(DefaultBrandName, meta.SEODescription), meta.CTRScore)
	assert.Equal(t, 50, meta.CTRScore)
}

func TestEngineGenerateArticleSEO_Derives(t *testing.T) {
	t.Parallel()

	engine := Default()
	meta := engine.GenerateArticleSEO(domain.Article{
		Title:   "Siswa Juara Lomba Tahfidz Tingkat Kota",
		Content: "<p>Siswa kami meraih juara lomba tahfidz. Lomba diikuti puluhan sekolah.</p>",
		SEO:     domain.SEOOverrides{FocusKeyphrase: "lomba tahfidz"},
	})

	assert.Equal(t, "siswa-juara-lomba-tahfidz-tingkat-kota", meta.Slug)
	assert.Equal(t, "Siswa Juara Lomba Tahfidz Tingkat Kota | SMP Muhammadiyah 35 Jakarta", meta.SEOTitle)
	assert.Equal(t, "SMP Muhammadiyah 35 Jakarta - Siswa kami meraih juara lomba tahfidz.", meta.SEODescription)
	assert.Equal(t, "lomba tahfidz", meta.FocusKeyphrase)
	assert.Equal(t, []string{"lomba", "siswa", "juara", "tahfidz", "tingkat"}, meta.LSIKeywords)
	assert.Equal(t, engine.CTRScore(meta.SEOTitle, meta.SEODescription), meta.CTRScore)
}

func TestEngineGenerateArticleSEO_KeepsOverrides(t *testing.T) {
	t.Parallel()

	engine := Default()
	overrides := domain.SEOOverrides{
		Slug:           "slug-manual",
		SEOTitle:       "Judul Manual",
		SEODescription: "Deskripsi manual.",
		FocusKeyphrase: "manual",
		LSIKeywords:    []string{"satu", "dua"},
	}

	meta := engine.GenerateArticleSEO(domain.Article{
		Title:   "Judul Asli",
		Content: "<p>Konten asli yang berbeda.</p>",
		SEO:     overrides,
	})

	assert.Equal(t, overrides, meta.Overrides())
	assert.Equal(t, engine.CTRScore("Judul Manual", "Deskripsi manual."), meta.CTRScore)

	meta.LSIKeywords[0] = "diubah"
	assert.Equal(t, "satu", overrides.LSIKeywords[0])
}

func TestEngineGenerateArticleSEO_BlankOverridesAreDerived(t *testing.T) {
	t.Parallel()

	engine := Default()
	meta := engine.GenerateArticleSEO(domain.Article{
		Title: "Pentas Seni",
		SEO:   domain.SEOOverrides{Slug: "   ", SEOTitle: "\t"},
	})

	assert.Equal(t, "pentas-seni", meta.Slug)
	assert.Equal(t, "Pentas Seni | SMP Muhammadiyah 35 Jakarta", meta.SEOTitle)
}

func TestEngineGenerateArticleSEO_Idempotent(t *testing.T) {
	t.Parallel()

	engine := Default()
	article := domain.Article{
		Title:   "PPDB SMP Muhammadiyah 35 Jakarta 2026/2027",
		Content: "<p>Pendaftaran peserta didik baru dibuka. Pendaftaran dilakukan secara daring.</p>",
		SEO:     domain.SEOOverrides{FocusKeyphrase: "pendaftaran"},
	}

	first := engine.GenerateArticleSEO(article)
	article.SEO = first.Overrides()
	second := engine.GenerateArticleSEO(article)
	third := engine.GenerateArticleSEO(article)

	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestEngineGenerateArticleSEO_Concurrent(t *testing.T) {
	t.Parallel()

	engine := Default()
	article := domain.Article{
		Title:   "Café Pelajar: Kegiatan Kewirausahaan Siswa",
		Content: "<p>Siswa mengelola kafe sekolah setiap hari Jumat.</p>",
	}
	want := engine.GenerateArticleSEO(article)

	var wg sync.WaitGroup
	results := make([]domain.SEOMetadata, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.GenerateArticleSEO(article)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

func TestOrDerive(t *testing.T) {
	t.Parallel()

	called := false
	derive := func() string {
		called = true
		return "derived"
	}

	assert.Equal(t, "manual", orDerive("manual", derive))
	assert.False(t, called)
	assert.Equal(t, "derived", orDerive(" ", derive))
	assert.True(t, called)

	assert.Equal(t, []string{"a"}, orDeriveList([]string{"a"}, func() []string { return []string{"b"} }))
	assert.Equal(t, []string{"b"}, orDeriveList(nil, func() []string { return []string{"b"} }))
	assert.Equal(t, []string{}, orDeriveList(nil, func() []string { return nil }))
}
