// Package goquery extracts page records from HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageaudit"
)

// nonRenderingSelector matches elements whose content never reaches the reader.
const nonRenderingSelector = "script, style, noscript, iframe"

// Ensure Extractor implements pageaudit.Extractor at compile time.
var _ pageaudit.Extractor = (*Extractor)(nil)

// Extractor reads titles, descriptions, headings and visible words from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the record for pageURL.
// Headings and metadata are read from the full document; visible words are
// counted after scripts, styles, frames and inline-hidden elements are removed.
func (e *Extractor) Extract(pageURL, html string) (*pageaudit.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pageaudit.Errorf(pageaudit.EINVALID, "failed to parse HTML: %v", err)
	}

	r := &pageaudit.Record{
		URL:   pageURL,
		Title: normalizeNewlines(doc.Find("title").First().Text()),
		H1:    normalizeNewlines(doc.Find("h1").Text()),
		H2:    normalizeNewlines(doc.Find("h2").Text()),
		H3:    normalizeNewlines(doc.Find("h3").Text()),
		H4:    normalizeNewlines(doc.Find("h4").Text()),
		H5:    normalizeNewlines(doc.Find("h5").Text()),
		H6:    normalizeNewlines(doc.Find("h6").Text()),
	}
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		r.MetaDescription = normalizeNewlines(content)
	}

	removeInvisible(doc)
	r.Words = strings.Fields(doc.Find("body").Text())

	return r, nil
}

// removeInvisible drops non-rendering elements and elements hidden by an
// inline style from the document.
func removeInvisible(doc *goquery.Document) {
	doc.Find(nonRenderingSelector).Remove()
	doc.Find("[style]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		style, _ := sel.Attr("style")
		return isHiddenStyle(style)
	}).Remove()
}

// isHiddenStyle reports whether an inline style declares display:none or
// visibility:hidden, ignoring case and whitespace.
func isHiddenStyle(style string) bool {
	compact := strings.ToLower(strings.Join(strings.Fields(style), ""))
	return strings.Contains(compact, "display:none") ||
		strings.Contains(compact, "visibility:hidden")
}

// newlineReplacer folds CRLF and lone CR line breaks into LF.
var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeNewlines returns s with every line break written as a single LF.
func normalizeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}
