package seo

import (
	"fmt"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

// Validation limits for stored SEO metadata.
const (
	MinSlugLength        = 3
	MaxSEOTitleLength    = 70
	MaxDescriptionLength = 160
)

// ValidationResult collects every problem found in a metadata record.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validate checks meta against the slug, title and description limits.
func Validate(meta domain.SEOMetadata) ValidationResult {
	result := ValidationResult{Errors: []string{}}

	if runeLen(meta.Slug) < MinSlugLength {
		result.Errors = append(result.Errors,
			fmt.Sprintf("slug must be at least %d characters", MinSlugLength))
	}
	if n := runeLen(meta.SEOTitle); n > MaxSEOTitleLength {
		result.Errors = append(result.Errors,
			fmt.Sprintf("SEO title is %d characters, maximum is %d", n, MaxSEOTitleLength))
	}
	if n := runeLen(meta.SEODescription); n > MaxDescriptionLength {
		result.Errors = append(result.Errors,
			fmt.Sprintf("meta description is %d characters, maximum is %d", n, MaxDescriptionLength))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
