package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/config"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/logging"
)

var (
	cfgFile  string
	brand    string
	logLevel string
	cfg      config.Config
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seoaudit",
	Short: "SEO metadata derivation and audit for school articles",
	Long: `seoaudit derives slugs, SEO titles, meta descriptions and LSI keywords
for school website articles and scores them for readability, SEO and CTR.

Example usage:
  seoaudit audit --source feed:export.xml          # Audit a WordPress export
  seoaudit audit --source json:articles.json -o json
  seoaudit slug "Juara 1 Lomba Tahfidz Tingkat Nasional"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func execute() error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $SEO_AUDIT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&brand, "brand", "", "brand name appended to SEO titles")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// initConfig loads the config file and applies flag overrides.
func initConfig() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if brand != "" {
		loaded.SEO.BrandName = brand
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
		if err := loaded.Validate(); err != nil {
			return err
		}
	}

	cfg = loaded
	logger = logging.New(cfg.Logging.Level)
	logger.Debug("configuration loaded",
		"brand", cfg.SEO.BrandName,
		"sources", len(cfg.Sources),
		"workers", cfg.Audit.Workers,
	)
	return nil
}
