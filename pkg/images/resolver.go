package images

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// ImageSearcher is any provider that can turn a text query into an image
// URL. An empty URL with a nil error means "no results".
type ImageSearcher interface {
	Search(query string) (string, error)
	Name() string
}

// Resolver walks a prioritized provider chain and always produces a usable
// image URL: premium search first, stock photos second, a deterministic
// placeholder last. Provider failures are logged and treated as "try the
// next one".
type Resolver struct {
	providers []ImageSearcher
}

func NewResolver(providers ...ImageSearcher) *Resolver {
	return &Resolver{providers: providers}
}

func (r *Resolver) Resolve(query string) string {
	for _, p := range r.providers {
		url, err := p.Search(query)
		if err != nil {
			slog.Warn("image provider failed, trying next", "provider", p.Name(), "query", query, "error", err)
			continue
		}
		if url == "" {
			slog.Info("image provider returned no results", "provider", p.Name(), "query", query)
			continue
		}
		return url
	}
	return PlaceholderURL(query)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// PlaceholderURL derives a stable placeholder image from the seed, so
// repeated calls for the same subject stay visually consistent.
func PlaceholderURL(seed string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(seed), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "story"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", slug)
}
