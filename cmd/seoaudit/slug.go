package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/app"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

var slugCmd = &cobra.Command{
	Use:   "slug <title>...",
	Short: "Print the derived slug, SEO title and CTR score for a title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxWords, _ := cmd.Flags().GetInt("max-words")
		engine := app.NewEngine(cfg.SEO)

		title := strings.Join(args, " ")
		meta := engine.GenerateArticleSEO(domain.Article{Title: title})
		slug := meta.Slug
		if maxWords > 0 {
			slug = engine.SlugN(title, maxWords)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "slug:      %s\n", slug)
		fmt.Fprintf(out, "seo title: %s\n", meta.SEOTitle)
		fmt.Fprintf(out, "ctr score: %d\n", meta.CTRScore)
		return nil
	},
}

func init() {
	slugCmd.Flags().Int("max-words", 0, "maximum slug words (default from config)")
	rootCmd.AddCommand(slugCmd)
}
