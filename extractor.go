package pageaudit

// Extractor derives a Record from an HTML document.
type Extractor interface {
	// Extract parses html and returns the record for pageURL.
	// pageURL is the canonical URL and is stored on the record as-is.
	// The result depends only on the arguments.
	Extract(pageURL, html string) (*Record, error)
}
