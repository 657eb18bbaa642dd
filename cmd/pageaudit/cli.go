package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/pageaudit"
	pacsv "github.com/fwojciec/pageaudit/csv"
	"github.com/fwojciec/pageaudit/sqlite"
	"github.com/fwojciec/pageaudit/yaml"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// CLI defines the command-line interface structure for Kong.
// Unset flags fall back to the config file, then to built-in defaults.
type CLI struct {
	Config      string        `short:"c" help:"YAML configuration file"`
	Sitemaps    []string      `name:"sitemap" short:"s" placeholder:"URL" help:"Sitemap URL to crawl (repeatable)"`
	Origin      string        `help:"Canonical site origin replaced by the mirror base"`
	MirrorBase  string        `name:"mirror-base" help:"Base URL of the static page mirror"`
	Output      string        `short:"o" help:"Output file (.csv, or .db/.sqlite/.sqlite3 for SQLite)"`
	Timeout     time.Duration `short:"t" help:"Fetch timeout per page"`
	Concurrency int           `short:"j" help:"Pages scraped at once (1 scrapes sequentially)"`
	RateLimit   float64       `name:"rate-limit" help:"Maximum requests per second per host (0 disables)"`
	Verbose     bool          `short:"v" help:"Log every sitemap, fetch and write"`
}

// Load resolves the run configuration: defaults, then the config file,
// then flags.
func (c *CLI) Load() (pageaudit.Config, error) {
	cfg := pageaudit.DefaultConfig()
	if c.Config != "" {
		fileCfg, err := yaml.LoadConfig(c.Config)
		if err != nil {
			return pageaudit.Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	cfg = cfg.Merge(pageaudit.Config{
		Sitemaps:    c.Sitemaps,
		Origin:      c.Origin,
		MirrorBase:  c.MirrorBase,
		Output:      c.Output,
		Timeout:     c.Timeout,
		Concurrency: c.Concurrency,
		RateLimit:   c.RateLimit,
	})
	if err := cfg.Validate(); err != nil {
		return pageaudit.Config{}, err
	}
	return cfg, nil
}

// openWriter returns the record writer for the output path's format.
func openWriter(path string) (pageaudit.RecordWriter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return nil, err
		}
		return sqlite.NewRecordStore(db), nil
	default:
		return pacsv.NewWriter(path), nil
	}
}

// newLogger returns a tint logger on w. Colour is used only on a terminal.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}))
}
