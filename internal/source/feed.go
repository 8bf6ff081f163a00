package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

const (
	wpNamespace     = "wp"
	defaultPostType = "post"
	yoastTitleKey   = "_yoast_wpseo_title"
	yoastDescKey    = "_yoast_wpseo_metadesc"
	yoastFocusKey   = "_yoast_wpseo_focuskw"
)

// FeedLoader reads RSS, Atom and WordPress WXR exports.
//
// Options:
//
//	postTypes      comma separated wp:post_type values to keep (default "post")
//	includeDrafts  "true" keeps items whose wp:status is not "publish"
type FeedLoader struct {
	parser *gofeed.Parser
}

var _ Loader = (*FeedLoader)(nil)

// NewFeedLoader wires a gofeed parser.
func NewFeedLoader() *FeedLoader {
	return &FeedLoader{parser: gofeed.NewParser()}
}

// Kind identifies the loader inside the registry.
func (f *FeedLoader) Kind() string {
	return "feed"
}

// Load parses the export at req.Path.
func (f *FeedLoader) Load(ctx context.Context, req Request) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	defer file.Close()

	feed, err := f.parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", req.Path, err)
	}

	keepTypes := parsePostTypes(req.Options["postTypes"])
	includeDrafts := req.Options["includeDrafts"] == "true"

	articles := make([]domain.Article, 0, len(feed.Items))
	for i, item := range feed.Items {
		if item == nil {
			continue
		}

		wp := item.Extensions[wpNamespace]
		if postType := extValue(wp, "post_type"); postType != "" && !keepTypes[postType] {
			continue
		}
		if status := extValue(wp, "status"); status != "" && status != "publish" && !includeDrafts {
			continue
		}

		articles = append(articles, toArticle(item, wp, req.Name, i))
	}

	return articles, nil
}

func toArticle(item *gofeed.Item, wp map[string][]ext.Extension, sourceName string, index int) domain.Article {
	content := item.Content
	if strings.TrimSpace(content) == "" {
		content = item.Description
	}

	article := domain.Article{
		ID:            itemID(item, wp, sourceName, index),
		Title:         strings.TrimSpace(item.Title),
		Content:       content,
		FeaturedImage: featuredImage(item),
		Source:        sourceName,
		SEO: domain.SEOOverrides{
			Slug: extValue(wp, "post_name"),
		},
	}

	meta := postMeta(wp)
	if v := meta[yoastTitleKey]; !strings.Contains(v, "%%") {
		article.SEO.SEOTitle = v
	}
	if v := meta[yoastDescKey]; !strings.Contains(v, "%%") {
		article.SEO.SEODescription = v
	}
	article.SEO.FocusKeyphrase = meta[yoastFocusKey]

	return article
}

func itemID(item *gofeed.Item, wp map[string][]ext.Extension, sourceName string, index int) string {
	if id := extValue(wp, "post_id"); id != "" {
		return id
	}
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	return fmt.Sprintf("%s-%d", sourceName, index+1)
}

func featuredImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// postMeta flattens wp:postmeta key/value pairs.
func postMeta(wp map[string][]ext.Extension) map[string]string {
	meta := map[string]string{}
	for _, entry := range wp["postmeta"] {
		key := childValue(entry, "meta_key")
		if key == "" {
			continue
		}
		meta[key] = strings.TrimSpace(childValue(entry, "meta_value"))
	}
	return meta
}

func extValue(exts map[string][]ext.Extension, name string) string {
	if values := exts[name]; len(values) > 0 {
		return strings.TrimSpace(values[0].Value)
	}
	return ""
}

func childValue(e ext.Extension, name string) string {
	if values := e.Children[name]; len(values) > 0 {
		return strings.TrimSpace(values[0].Value)
	}
	return ""
}

func parsePostTypes(raw string) map[string]bool {
	types := map[string]bool{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types[t] = true
		}
	}
	if len(types) == 0 {
		types[defaultPostType] = true
	}
	return types
}
