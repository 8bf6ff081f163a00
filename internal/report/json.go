package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/ports"
)

// JSONReporter writes reports as an indented JSON array.
type JSONReporter struct {
	out io.Writer
}

var _ ports.Reporter = (*JSONReporter)(nil)

// NewJSONReporter writes to out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

type jsonReport struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Source   string          `json:"source,omitempty"`
	Valid    bool            `json:"valid"`
	Errors   []string        `json:"errors"`
	Analysis domain.Analysis `json:"analysis"`
}

// Report encodes reports to the writer.
func (j *JSONReporter) Report(ctx context.Context, reports []domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		errs := r.Errors
		if errs == nil {
			errs = []string{}
		}
		payload = append(payload, jsonReport{
			ID:       r.Article.ID,
			Title:    r.Article.Title,
			Source:   r.Article.Source,
			Valid:    r.Valid,
			Errors:   errs,
			Analysis: r.Analysis,
		})
	}

	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	return nil
}
