package mock

import (
	"context"

	"github.com/fwojciec/pageaudit"
)

var _ pageaudit.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pageaudit.SitemapService.
type SitemapService struct {
	URLsFn func(ctx context.Context, sitemapURL string) ([]string, error)
}

func (s *SitemapService) URLs(ctx context.Context, sitemapURL string) ([]string, error) {
	return s.URLsFn(ctx, sitemapURL)
}
