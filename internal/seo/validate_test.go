package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		meta       domain.SEOMetadata
		wantErrors []string
	}{
		{
			name: "valid",
			meta: domain.SEOMetadata{Slug: "ppdb-2026", SEOTitle: "PPDB 2026", SEODescription: "Pendaftaran dibuka."},
		},
		{
			name:       "short slug",
			meta:       domain.SEOMetadata{Slug: "ab"},
			wantErrors: []string{"slug"},
		},
		{
			name: "everything too long",
			meta: domain.SEOMetadata{
				Slug:           "",
				SEOTitle:       strings.Repeat("t", 71),
				SEODescription: strings.Repeat("d", 161),
			},
			wantErrors: []string{"slug", "SEO title", "meta description"},
		},
		{
			name: "limits are inclusive",
			meta: domain.SEOMetadata{
				Slug:           "abc",
				SEOTitle:       strings.Repeat("t", 70),
				SEODescription: strings.Repeat("é", 160),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := Validate(tt.meta)
			assert.Equal(t, len(tt.wantErrors) == 0, result.IsValid)
			assert.Len(t, result.Errors, len(tt.wantErrors))
			for i, want := range tt.wantErrors {
				assert.Contains(t, result.Errors[i], want)
			}
		})
	}
}
