package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/crawl"
	"github.com/fwojciec/pageaudit/goquery"
	pahttp "github.com/fwojciec/pageaudit/http"
	paslog "github.com/fwojciec/pageaudit/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
// With no arguments the built-in sitemaps are audited.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("pageaudit"),
		kong.Description("Audit page content listed in sitemaps and append it to a CSV file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Help anywhere on the command line ends the run once it is printed.
	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := cli.Load()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	fetcher := paslog.NewLoggingFetcher(pahttp.NewFetcher(pahttp.WithTimeout(cfg.Timeout)), logger)
	defer fetcher.Close()

	writer, err := openWriter(cfg.Output)
	if err != nil {
		return err
	}
	defer writer.Close()

	c := &crawl.Crawler{
		Sitemaps:    paslog.NewLoggingSitemapService(pahttp.NewSitemapService(nil), logger),
		Fetcher:     fetcher,
		Extractor:   goquery.NewExtractor(),
		Writer:      paslog.NewLoggingRecordWriter(writer, logger),
		Mirror:      pageaudit.NewMirror(cfg.Origin, cfg.MirrorBase),
		Concurrency: cfg.Concurrency,
	}
	if cfg.RateLimit > 0 {
		c.RateLimiter = crawl.NewDomainLimiter(cfg.RateLimit)
	}

	cmd := &AuditCmd{
		Crawler:  c,
		Sitemaps: cfg.Sitemaps,
		Stdout:   stdout,
		Stderr:   stderr,
	}
	return cmd.Run(ctx)
}
