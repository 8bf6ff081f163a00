package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "SEO_AUDIT_CONFIG"
	brandNameEnv  = "SEO_BRAND_NAME"
	logLevelEnv   = "SEO_LOG_LEVEL"
	workersEnv    = "SEO_AUDIT_WORKERS"
)

// Configuration validation errors.
var (
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrNegativeSlugWords     = errors.New("seo.slugMaxWords must not be negative")
	ErrNegativeDescription   = errors.New("seo.descriptionMaxLength must not be negative")
	ErrInvalidWorkers        = errors.New("audit.workers must be at least 1")
	ErrInvalidFormat         = errors.New("audit.format must be 'table' or 'json'")
	ErrSourceMissingKind     = errors.New("source kind is required")
	ErrSourceMissingLocation = errors.New("source path is required")
)

// Config holds the settings for the SEO audit tool.
type Config struct {
	Logging LoggingConfig  `yaml:"logging"`
	SEO     SEOConfig      `yaml:"seo"`
	Audit   AuditConfig    `yaml:"audit"`
	Sources []SourceConfig `yaml:"sources"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SEOConfig tunes the derivation engine. Zero values keep engine defaults.
type SEOConfig struct {
	BrandName            string   `yaml:"brandName"`
	SlugMaxWords         int      `yaml:"slugMaxWords"`
	DescriptionMaxLength int      `yaml:"descriptionMaxLength"`
	Stopwords            []string `yaml:"stopwords"`
	PowerWords           []string `yaml:"powerWords"`
	FallbackWithTitle    string   `yaml:"fallbackWithTitle"`
	FallbackGeneric      string   `yaml:"fallbackGeneric"`
}

// AuditConfig controls the batch audit.
type AuditConfig struct {
	Workers int    `yaml:"workers"`
	Format  string `yaml:"format"`
}

// SourceConfig names one article export to audit.
type SourceConfig struct {
	Name    string            `yaml:"name"`
	Kind    string            `yaml:"kind"`
	Path    string            `yaml:"path"`
	Options map[string]string `yaml:"options"`
}

// Load reads the YAML file at path (or $SEO_AUDIT_CONFIG when path is empty),
// merges it over the defaults and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Audit:   AuditConfig{Workers: 4, Format: "table"},
	}
}

// Validate checks the configuration for values the tool cannot use.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	if c.SEO.SlugMaxWords < 0 {
		return ErrNegativeSlugWords
	}
	if c.SEO.DescriptionMaxLength < 0 {
		return ErrNegativeDescription
	}

	if c.Audit.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.Audit.Format != "table" && c.Audit.Format != "json" {
		return ErrInvalidFormat
	}

	for i, src := range c.Sources {
		if src.Kind == "" {
			return fmt.Errorf("%w: sources[%d]", ErrSourceMissingKind, i)
		}
		if src.Path == "" {
			return fmt.Errorf("%w: sources[%d]", ErrSourceMissingLocation, i)
		}
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(brandNameEnv); v != "" {
		c.SEO.BrandName = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(workersEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audit.Workers = n
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.SEO.BrandName != "" {
		base.SEO.BrandName = override.SEO.BrandName
	}
	if override.SEO.SlugMaxWords != 0 {
		base.SEO.SlugMaxWords = override.SEO.SlugMaxWords
	}
	if override.SEO.DescriptionMaxLength != 0 {
		base.SEO.DescriptionMaxLength = override.SEO.DescriptionMaxLength
	}
	if len(override.SEO.Stopwords) > 0 {
		base.SEO.Stopwords = override.SEO.Stopwords
	}
	if len(override.SEO.PowerWords) > 0 {
		base.SEO.PowerWords = override.SEO.PowerWords
	}
	if override.SEO.FallbackWithTitle != "" {
		base.SEO.FallbackWithTitle = override.SEO.FallbackWithTitle
	}
	if override.SEO.FallbackGeneric != "" {
		base.SEO.FallbackGeneric = override.SEO.FallbackGeneric
	}

	if override.Audit.Workers != 0 {
		base.Audit.Workers = override.Audit.Workers
	}
	if override.Audit.Format != "" {
		base.Audit.Format = override.Audit.Format
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	return base
}
