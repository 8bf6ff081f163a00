package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/app"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/config"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Derive SEO metadata for every article and report the scores",
	Long: `Load articles from the configured sources (and any --source flags),
derive the missing SEO fields, validate them and print a report.

Source kinds:
  feed   RSS, Atom or WordPress WXR export
  json   JSON array of articles`,
	Example: `  seoaudit audit --source feed:wordpress.xml
  seoaudit audit --config seoaudit.yaml --output json --workers 8`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringArrayP("source", "s", nil, "extra source as kind:path (repeatable)")
	auditCmd.Flags().StringP("output", "o", "", "report format: table or json")
	auditCmd.Flags().Int("workers", 0, "number of concurrent analyses")
	auditCmd.Flags().Bool("no-color", false, "disable coloured scores")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	extra, _ := cmd.Flags().GetStringArray("source")
	output, _ := cmd.Flags().GetString("output")
	workers, _ := cmd.Flags().GetInt("workers")
	noColor, _ := cmd.Flags().GetBool("no-color")

	runCfg := cfg
	runCfg.Sources = append([]config.SourceConfig(nil), cfg.Sources...)
	for _, raw := range extra {
		src, err := parseSourceFlag(raw)
		if err != nil {
			return err
		}
		runCfg.Sources = append(runCfg.Sources, src)
	}
	if output != "" {
		runCfg.Audit.Format = output
	}
	if workers > 0 {
		runCfg.Audit.Workers = workers
	}
	if err := runCfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colors := !noColor && !color.NoColor && out == os.Stdout

	application, err := app.New(runCfg, logger, app.Options{Out: out, Colors: colors})
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}

// parseSourceFlag splits "kind:path". The source is named after its path.
func parseSourceFlag(value string) (config.SourceConfig, error) {
	kind, path, ok := strings.Cut(value, ":")
	kind = strings.TrimSpace(kind)
	path = strings.TrimSpace(path)
	if !ok || kind == "" || path == "" {
		return config.SourceConfig{}, fmt.Errorf("invalid --source %q: want kind:path", value)
	}
	return config.SourceConfig{Name: path, Kind: kind, Path: path}, nil
}
