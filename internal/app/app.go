package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/config"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/logging"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/ports"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/report"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/seo"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/source"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/usecase"
)

// Options carries process-level wiring that does not belong in config.
type Options struct {
	Out    io.Writer
	Colors bool
}

// Application wires configs to use cases.
type Application struct {
	cfg    config.Config
	engine *seo.Engine
	audit  *usecase.Audit
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger, opts Options) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}
	if opts.Out == nil {
		return nil, fmt.Errorf("output writer is required")
	}

	engine := NewEngine(cfg.SEO)

	registry := source.NewRegistry()
	registry.Register(source.NewFeedLoader())
	registry.Register(source.NewJSONLoader())

	src := source.NewStrategySource(registry, cfg.Sources, baseLogger.With("component", "source"))

	var reporter ports.Reporter
	switch cfg.Audit.Format {
	case "json":
		reporter = report.NewJSONReporter(opts.Out)
	case "table", "":
		reporter = report.NewTableReporter(opts.Out, opts.Colors)
	default:
		return nil, fmt.Errorf("unknown report format %q", cfg.Audit.Format)
	}

	audit := usecase.NewAudit(usecase.AuditDeps{
		Source:   src,
		Analyzer: engine,
		Reporter: reporter,
		Workers:  cfg.Audit.Workers,
		Logger:   baseLogger.With("component", "audit"),
	})

	return &Application{cfg: cfg, engine: engine, audit: audit}, nil
}

// NewEngine maps the SEO config section onto engine options.
func NewEngine(cfg config.SEOConfig) *seo.Engine {
	return seo.New(seo.Options{
		BrandName:            cfg.BrandName,
		SlugMaxWords:         cfg.SlugMaxWords,
		DescriptionMaxLength: cfg.DescriptionMaxLength,
		Lexicon: seo.Lexicon{
			Stopwords:         cfg.Stopwords,
			PowerWords:        cfg.PowerWords,
			FallbackWithTitle: cfg.FallbackWithTitle,
			FallbackGeneric:   cfg.FallbackGeneric,
		},
	})
}

// Engine exposes the configured derivation engine.
func (a *Application) Engine() *seo.Engine {
	return a.engine
}

// Run performs a single audit over every configured source.
func (a *Application) Run(ctx context.Context) error {
	if len(a.cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}
	return a.audit.Run(ctx)
}
