package mock

import "github.com/fwojciec/pageaudit"

var _ pageaudit.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pageaudit.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) (*pageaudit.Record, error)
}

func (e *Extractor) Extract(pageURL, html string) (*pageaudit.Record, error) {
	return e.ExtractFn(pageURL, html)
}
