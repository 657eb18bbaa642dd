// Package crawl runs an audit: it reads sitemaps, scrapes every listed page
// from its mirror and writes one record per page.
package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/pageaudit"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates an audit run.
type Crawler struct {
	Sitemaps  pageaudit.SitemapService
	Fetcher   pageaudit.Fetcher
	Extractor pageaudit.Extractor
	Writer    pageaudit.RecordWriter

	// Mirror rewrites page URLs before fetching. If nil, pages are fetched
	// from their canonical URL.
	Mirror *pageaudit.Mirror

	// RateLimiter, if set, paces fetches per mirror host.
	RateLimiter pageaudit.DomainLimiter

	// Concurrency is the number of pages scraped at once. Values below 2
	// scrape pages strictly one after another. Records are always written
	// in sitemap order.
	Concurrency int
}

// Result holds the outcome of a run.
type Result struct {
	Discovered int
	Saved      int
	Failed     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressSaved ProgressType = iota
	ProgressFailed
)

// ProgressEvent reports the outcome of one page.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// outcome is the result of scraping the page at position in the URL list.
type outcome struct {
	position int
	url      string
	record   *pageaudit.Record
	err      error
}

// Discover reads every sitemap in order and concatenates their URLs.
// Duplicates across sitemaps are kept. Any sitemap error aborts discovery.
func (c *Crawler) Discover(ctx context.Context, sitemaps []string) ([]string, error) {
	var all []string
	for _, sitemapURL := range sitemaps {
		urls, err := c.Sitemaps.URLs(ctx, sitemapURL)
		if err != nil {
			return nil, fmt.Errorf("sitemap %s: %w", sitemapURL, err)
		}
		all = append(all, urls...)
	}
	return all, nil
}

// Run discovers URLs from sitemaps and processes them.
func (c *Crawler) Run(ctx context.Context, sitemaps []string, progress ProgressFunc) (*Result, error) {
	urls, err := c.Discover(ctx, sitemaps)
	if err != nil {
		return nil, err
	}
	return c.Process(ctx, urls, progress)
}

// Process scrapes and writes every URL. A page that cannot be rewritten,
// fetched or extracted is reported as failed and skipped. Write errors and
// context cancellation stop the run; the partial Result is still returned.
func (c *Crawler) Process(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	res := &Result{Discovered: len(urls)}
	if c.Concurrency <= 1 {
		return res, c.processSequential(ctx, urls, res, progress)
	}
	return res, c.processConcurrent(ctx, urls, res, progress)
}

func (c *Crawler) processSequential(ctx context.Context, urls []string, res *Result, progress ProgressFunc) error {
	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := c.scrape(ctx, u)
		if err := c.commit(ctx, outcome{position: i, url: u, record: record, err: err}, res, progress); err != nil {
			return err
		}
	}
	return nil
}

// processConcurrent scrapes with a bounded worker pool. Outcomes are
// buffered until every earlier position has been committed, so the single
// writer sees records in the same order as the sequential path.
func (c *Crawler) processConcurrent(ctx context.Context, urls []string, res *Result, progress ProgressFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)

	outcomes := make(chan outcome)
	go func() {
		for i, u := range urls {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				record, err := c.scrape(gctx, u)
				select {
				case outcomes <- outcome{position: i, url: u, record: record, err: err}:
				case <-gctx.Done():
				}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	pending := make(map[int]outcome)
	next := 0
	for o := range outcomes {
		pending[o.position] = o
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := c.commit(ctx, p, res, progress); err != nil {
				cancel()
				for range outcomes {
				}
				return err
			}
		}
	}
	return ctx.Err()
}

// scrape produces the record for one canonical page URL.
func (c *Crawler) scrape(ctx context.Context, pageURL string) (*pageaudit.Record, error) {
	target := pageURL
	if c.Mirror != nil {
		var err error
		if target, err = c.Mirror.Rewrite(pageURL); err != nil {
			return nil, err
		}
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, hostOf(target)); err != nil {
			return nil, err
		}
	}

	html, err := c.Fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	return c.Extractor.Extract(pageURL, html)
}

// commit writes a successful outcome or records a failed one.
// Only cancellation and write errors are returned.
func (c *Crawler) commit(ctx context.Context, o outcome, res *Result, progress ProgressFunc) error {
	if o.err != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Failed++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: res.Saved + res.Failed,
				Total:     res.Discovered,
				URL:       o.url,
				Error:     o.err,
			})
		}
		return nil
	}

	if err := c.Writer.WriteRecord(ctx, o.record); err != nil {
		return fmt.Errorf("writing record for %s: %w", o.url, err)
	}
	res.Saved++
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressSaved,
			Completed: res.Saved + res.Failed,
			Total:     res.Discovered,
			URL:       o.url,
		})
	}
	return nil
}
