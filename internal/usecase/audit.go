package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/ports"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/seo"
)

const fallbackSlugPrefix = "artikel-"

// AuditDeps wires the driven adapters into the audit use case.
type AuditDeps struct {
	Source   ports.ArticleSource
	Analyzer ports.Analyzer
	Reporter ports.Reporter
	Workers  int
	Logger   *slog.Logger
}

// Audit loads articles, derives their SEO metadata and reports the result.
type Audit struct {
	source   ports.ArticleSource
	analyzer ports.Analyzer
	reporter ports.Reporter
	workers  int
	logger   *slog.Logger
}

// NewAudit constructs the audit use case.
func NewAudit(deps AuditDeps) *Audit {
	workers := deps.Workers
	if workers < 1 {
		workers = 1
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Audit{
		source:   deps.Source,
		analyzer: deps.Analyzer,
		reporter: deps.Reporter,
		workers:  workers,
		logger:   logger,
	}
}

// Run executes one audit pass.
func (a *Audit) Run(ctx context.Context) error {
	if a.source == nil || a.analyzer == nil {
		return fmt.Errorf("audit is missing a source or analyzer")
	}

	articles, err := a.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load articles: %w", err)
	}
	a.logger.Info("articles loaded", "count", len(articles))

	reports, err := a.Review(ctx, articles)
	if err != nil {
		return err
	}

	invalid := 0
	for _, r := range reports {
		if !r.Valid {
			invalid++
		}
	}
	a.logger.Info("audit finished", "articles", len(reports), "invalid", invalid)

	if a.reporter == nil {
		return nil
	}
	if err := a.reporter.Report(ctx, reports); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// Review analyses articles concurrently and returns reports in input order.
func (a *Audit) Review(ctx context.Context, articles []domain.Article) ([]domain.Report, error) {
	reports := make([]domain.Report, len(articles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, article := range articles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = a.review(article, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("review articles: %w", err)
	}
	return reports, nil
}

func (a *Audit) review(article domain.Article, index int) domain.Report {
	analysis := a.analyzer.Analyze(article)
	if analysis.Slug == "" {
		analysis.Slug = fallbackSlug(article.ID, index)
		a.logger.Debug("empty slug replaced", "article", article.ID, "slug", analysis.Slug)
	}

	result := seo.Validate(analysis.SEOMetadata)
	return domain.Report{
		Article:  article,
		Analysis: analysis,
		Valid:    result.IsValid,
		Errors:   result.Errors,
	}
}

// fallbackSlug builds an id-based slug for articles whose title yields none.
func fallbackSlug(id string, index int) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, id)
	cleaned = strings.Join(strings.FieldsFunc(cleaned, func(r rune) bool { return r == '-' }), "-")

	if cleaned == "" {
		cleaned = strconv.Itoa(index + 1)
	}
	return fallbackSlugPrefix + cleaned
}
