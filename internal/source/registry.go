// Package source loads articles from exports (feeds, WordPress WXR, JSON).
package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/ramsezcoder/new-smp-muhammadiyah-35-jakarta-sub000/internal/domain"
)

// Request carries everything a loader needs for one configured source.
type Request struct {
	Name    string
	Path    string
	Options map[string]string
}

// Loader is one source strategy (feed, json, ...).
type Loader interface {
	Kind() string
	Load(ctx context.Context, req Request) ([]domain.Article, error)
}

// Registry maps source kinds to their loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{loaders: map[string]Loader{}}
}

// Register adds or replaces a loader.
func (r *Registry) Register(loader Loader) {
	if r.loaders == nil {
		r.loaders = map[string]Loader{}
	}
	r.loaders[loader.Kind()] = loader
}

// Resolve returns the loader for kind or an error if it is absent.
func (r *Registry) Resolve(kind string) (Loader, error) {
	if loader, ok := r.loaders[kind]; ok {
		return loader, nil
	}
	return nil, fmt.Errorf("source kind %q is not registered (known: %v)", kind, r.Kinds())
}

// Kinds lists the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.loaders))
	for k := range r.loaders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
