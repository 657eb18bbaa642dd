package pageaudit

import (
	"net/url"
	"time"
)

// Defaults for an audit run of the avathi.com site.
const (
	DefaultOrigin      = "https://www.avathi.com"
	DefaultMirrorBase  = "https://avathioutdoors.gumlet.io/scrapped-data/"
	DefaultOutput      = "scraped_data.csv"
	DefaultTimeout     = 10 * time.Second
	DefaultConcurrency = 1
)

// DefaultSitemaps returns the sitemaps crawled when none are configured.
func DefaultSitemaps() []string {
	return []string{
		"https://www.avathi.com/static_pages/sitemap.xml",
		"https://www.avathi.com/activities/sitemap.xml",
		"https://www.avathi.com/experiences/sitemap.xml",
		"https://www.avathi.com/places/sitemap.xml",
	}
}

// Config holds the settings for one audit run.
type Config struct {
	// Sitemaps are crawled in order; their URL lists are concatenated.
	Sitemaps []string

	// Origin is the canonical site prefix replaced by MirrorBase.
	Origin     string
	MirrorBase string

	// Output is the path of the CSV (or SQLite) output file.
	Output string

	// Timeout bounds each page fetch.
	Timeout time.Duration

	// Concurrency is the number of pages processed at once.
	// Values below 2 process pages strictly one after another.
	Concurrency int

	// RateLimit caps requests per second per host. Zero disables it.
	RateLimit float64
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Sitemaps:    DefaultSitemaps(),
		Origin:      DefaultOrigin,
		MirrorBase:  DefaultMirrorBase,
		Output:      DefaultOutput,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
	}
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	if len(o.Sitemaps) > 0 {
		c.Sitemaps = append([]string(nil), o.Sitemaps...)
	}
	if o.Origin != "" {
		c.Origin = o.Origin
	}
	if o.MirrorBase != "" {
		c.MirrorBase = o.MirrorBase
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Concurrency != 0 {
		c.Concurrency = o.Concurrency
	}
	if o.RateLimit != 0 {
		c.RateLimit = o.RateLimit
	}
	return c
}

// Validate returns an error if the configuration cannot drive a run.
func (c Config) Validate() error {
	if len(c.Sitemaps) == 0 {
		return Errorf(EINVALID, "at least one sitemap required")
	}
	for _, s := range c.Sitemaps {
		if !isAbsoluteURL(s) {
			return Errorf(EINVALID, "invalid sitemap URL %q", s)
		}
	}
	if !isAbsoluteURL(c.Origin) {
		return Errorf(EINVALID, "invalid origin %q", c.Origin)
	}
	if !isAbsoluteURL(c.MirrorBase) {
		return Errorf(EINVALID, "invalid mirror base %q", c.MirrorBase)
	}
	if c.Output == "" {
		return Errorf(EINVALID, "output path required")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "rate limit must not be negative")
	}
	return nil
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
