package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

// JSONLoader reads an array of articles as stored by the site's CMS.
type JSONLoader struct{}

var _ Loader = (*JSONLoader)(nil)

// NewJSONLoader builds a JSON loader.
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{}
}

// Kind identifies the loader inside the registry.
func (j *JSONLoader) Kind() string {
	return "json"
}

type jsonArticle struct {
	ID            articleID           `json:"id"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	FeaturedImage string              `json:"featuredImage"`
	SEO           domain.SEOOverrides `json:"seo"`
}

// Load decodes the file at req.Path.
func (j *JSONLoader) Load(ctx context.Context, req Request) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}

	var items []jsonArticle
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode articles %s: %w", req.Path, err)
	}

	articles := make([]domain.Article, 0, len(items))
	for i, item := range items {
		id := string(item.ID)
		if id == "" {
			id = fmt.Sprintf("%s-%d", req.Name, i+1)
		}
		articles = append(articles, domain.Article{
			ID:            id,
			Title:         item.Title,
			Content:       item.Content,
			FeaturedImage: item.FeaturedImage,
			Source:        req.Name,
			SEO:           item.SEO,
		})
	}

	return articles, nil
}

// articleID accepts both numeric and string ids.
type articleID string

func (a *articleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = articleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("article id must be a string or number: %w", err)
	}
	*a = articleID(n.String())
	return nil
}
