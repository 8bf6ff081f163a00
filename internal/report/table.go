// Package report renders audit results for humans and machines.
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/ports"
)

const (
	titleWidth = 40
	slugWidth  = 32
)

// TableReporter prints one row per article followed by validation problems.
type TableReporter struct {
	out    io.Writer
	colors bool
}

var _ ports.Reporter = (*TableReporter)(nil)

// NewTableReporter writes to out; colors toggles ANSI score highlighting.
func NewTableReporter(out io.Writer, colors bool) *TableReporter {
	return &TableReporter{out: out, colors: colors}
}

// Report renders reports as a table.
func (t *TableReporter) Report(ctx context.Context, reports []domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	table := tablewriter.NewTable(t.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Article.ID,
			runewidth.Truncate(r.Article.Title, titleWidth, "…"),
			runewidth.Truncate(r.Analysis.Slug, slugWidth, "…"),
			t.score(r.Analysis.SEOScore),
			t.score(r.Analysis.ReadabilityScore),
			t.score(r.Analysis.CTRScore),
			t.status(r.Valid),
		})
	}

	table.Header([]string{"ID", "Title", "Slug", "SEO", "Readability", "CTR", "Status"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	return t.writeProblems(reports)
}

func (t *TableReporter) writeProblems(reports []domain.Report) error {
	for _, r := range reports {
		for _, msg := range r.Errors {
			if _, err := fmt.Fprintf(t.out, "%s: %s\n", r.Article.ID, msg); err != nil {
				return fmt.Errorf("write problems: %w", err)
			}
		}
	}
	return nil
}

func (t *TableReporter) score(v int) string {
	s := strconv.Itoa(v)
	switch {
	case v >= 70:
		return t.paint(color.FgGreen, s)
	case v >= 40:
		return t.paint(color.FgYellow, s)
	default:
		return t.paint(color.FgRed, s)
	}
}

func (t *TableReporter) status(valid bool) string {
	if valid {
		return t.paint(color.FgGreen, "ok")
	}
	return t.paint(color.FgRed, "invalid")
}

func (t *TableReporter) paint(attr color.Attribute, s string) string {
	if !t.colors {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
