package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/crawl"
)

// AuditCmd runs one audit and reports per-page outcomes.
type AuditCmd struct {
	Crawler  *crawl.Crawler
	Sitemaps []string
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run executes the audit. Page failures are printed and skipped; sitemap
// and write failures are returned.
func (c *AuditCmd) Run(ctx context.Context) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressSaved:
			fmt.Fprintf(c.Stdout, "Processed and saved: %s\n", e.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(c.Stderr, "Error scraping %s: %s\n", e.URL, pageaudit.ErrorMessage(e.Error))
		}
	}

	result, err := c.Crawler.Run(ctx, c.Sitemaps, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout, "Saved %d of %d pages (%d failed)\n", result.Saved, result.Discovered, result.Failed)
	return nil
}
