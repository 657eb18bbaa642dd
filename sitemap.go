package pageaudit

import "context"

// SitemapService reads page URLs from sitemap documents.
type SitemapService interface {
	// URLs fetches the sitemap at sitemapURL and returns the <loc> of every
	// <url> entry in document order. Nothing is filtered or deduplicated.
	// Sitemap indexes are resolved recursively.
	URLs(ctx context.Context, sitemapURL string) ([]string, error)
}
