// Package yaml loads pageaudit configuration files.
package yaml

import (
	"os"
	"time"

	"github.com/fwojciec/pageaudit"
	"github.com/goccy/go-yaml"
)

// fileConfig is the on-disk shape of a configuration file.
type fileConfig struct {
	Sitemaps    []string `yaml:"sitemaps"`
	Origin      string   `yaml:"origin"`
	MirrorBase  string   `yaml:"mirrorBase"`
	Output      string   `yaml:"output"`
	Timeout     string   `yaml:"timeout"`
	Concurrency int      `yaml:"concurrency"`
	RateLimit   float64  `yaml:"rateLimit"`
}

// LoadConfig reads the YAML configuration file at path.
// Fields missing from the file are left zero so the result can be merged
// over pageaudit.DefaultConfig.
func LoadConfig(path string) (pageaudit.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pageaudit.Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration. Unknown keys are rejected.
func ParseConfig(data []byte) (pageaudit.Config, error) {
	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
		return pageaudit.Config{}, pageaudit.Errorf(pageaudit.EINVALID, "invalid config: %v", err)
	}

	cfg := pageaudit.Config{
		Sitemaps:    fc.Sitemaps,
		Origin:      fc.Origin,
		MirrorBase:  fc.MirrorBase,
		Output:      fc.Output,
		Concurrency: fc.Concurrency,
		RateLimit:   fc.RateLimit,
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return pageaudit.Config{}, pageaudit.Errorf(pageaudit.EINVALID, "invalid timeout %q: %v", fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
