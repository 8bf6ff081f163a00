package ports

import (
	"context"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

// ArticleSource loads the articles to audit from an export or store.
type ArticleSource interface {
	Load(ctx context.Context) ([]domain.Article, error)
}

// Analyzer derives SEO metadata and scores for a single article.
type Analyzer interface {
	Analyze(article domain.Article) domain.Analysis
}

// Reporter renders audit results.
type Reporter interface {
	Report(ctx context.Context, reports []domain.Report) error
}
