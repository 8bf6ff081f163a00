package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/config"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/ports"
)

// StrategySource implements ArticleSource via registered loader strategies.
type StrategySource struct {
	registry *Registry
	sources  []config.SourceConfig
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*StrategySource)(nil)

// NewStrategySource wires the loader registry with config-defined sources.
func NewStrategySource(reg *Registry, sources []config.SourceConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		sources:  sources,
		logger:   log,
	}
}

// Load runs every configured source in order and concatenates the results.
func (s *StrategySource) Load(ctx context.Context) ([]domain.Article, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	s.debug("load sources", "sources", len(s.sources))

	var aggregated []domain.Article
	for _, src := range s.sources {
		name := src.Name
		if name == "" {
			name = src.Kind
		}

		loader, err := s.registry.Resolve(src.Kind)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", name, err)
		}

		results, err := loader.Load(ctx, Request{
			Name:    name,
			Path:    src.Path,
			Options: src.Options,
		})
		if err != nil {
			return nil, fmt.Errorf("load source %s: %w", name, err)
		}

		s.debug("source produced articles", "source", name, "kind", src.Kind, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("strategy source done", "total_articles", len(aggregated))
	return aggregated, nil
}

func (s *StrategySource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
