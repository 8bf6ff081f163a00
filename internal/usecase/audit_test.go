package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/seo"
)

type stubSource struct {
	articles []domain.Article
	err      error
}

func (s stubSource) Load(context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

type captureReporter struct {
	reports []domain.Report
	err     error
}

func (c *captureReporter) Report(_ context.Context, reports []domain.Report) error {
	c.reports = reports
	return c.err
}

func TestAudit_Run(t *testing.T) {
	t.Parallel()

	articles := []domain.Article{
		{ID: "1", Title: "Kegiatan Tahfidz", Content: "<p>Siswa menghafal Al-Quran setiap pagi.</p>"},
		{ID: "Post #2", Title: "yang di ke"},
		{ID: "3", Title: "Profil", SEO: domain.SEOOverrides{SEODescription: strings.Repeat("d", 200)}},
	}
	for i := 0; i < 20; i++ {
		articles = append(articles, domain.Article{ID: fmt.Sprint(100 + i), Title: fmt.Sprintf("Berita Sekolah %d", i)})
	}

	reporter := &captureReporter{}
	audit := NewAudit(AuditDeps{
		Source:   stubSource{articles: articles},
		Analyzer: seo.Default(),
		Reporter: reporter,
		Workers:  4,
	})

	require.NoError(t, audit.Run(context.Background()))
	require.Len(t, reporter.reports, len(articles))

	for i, r := range reporter.reports {
		assert.Equal(t, articles[i].ID, r.Article.ID, "order must be preserved")
	}

	first := reporter.reports[0]
	assert.Equal(t, "kegiatan-tahfidz", first.Analysis.Slug)
	assert.True(t, first.Valid)
	assert.Empty(t, first.Errors)

	second := reporter.reports[1]
	assert.Equal(t, "artikel-post-2", second.Analysis.Slug)
	assert.True(t, second.Valid)

	third := reporter.reports[2]
	assert.False(t, third.Valid)
	require.Len(t, third.Errors, 1)
	assert.Contains(t, third.Errors[0], "meta description")
}

func TestAudit_RunErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	err := NewAudit(AuditDeps{Source: stubSource{err: boom}, Analyzer: seo.Default()}).Run(context.Background())
	assert.ErrorIs(t, err, boom)

	err = NewAudit(AuditDeps{
		Source:   stubSource{articles: []domain.Article{{ID: "1"}}},
		Analyzer: seo.Default(),
		Reporter: &captureReporter{err: boom},
	}).Run(context.Background())
	assert.ErrorIs(t, err, boom)

	err = NewAudit(AuditDeps{}).Run(context.Background())
	assert.Error(t, err)
}

func TestAudit_ReviewCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	audit := NewAudit(AuditDeps{Analyzer: seo.Default()})
	_, err := audit.Review(ctx, []domain.Article{{ID: "1"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallbackSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "artikel-1719800000000", fallbackSlug("1719800000000", 0))
	assert.Equal(t, "artikel-post-2", fallbackSlug("Post #2", 1))
	assert.Equal(t, "artikel-4", fallbackSlug("", 3))
	assert.Equal(t, "artikel-4", fallbackSlug("###", 3))
}
