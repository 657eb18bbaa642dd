package pageaudit

import (
	"context"
	"strconv"
	"strings"
)

// Columns returns the output field names in order.
// textLengthWords and totalWords both carry the word count; the duplicate
// column is kept because existing consumers of the file read both.
func Columns() []string {
	return []string{
		"url",
		"title", "metaDescription",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"textLengthWords",
		"allWords", "totalWords",
	}
}

// Record is the structured content extracted from one page.
type Record struct {
	// URL is the canonical page URL from the sitemap, not the mirror URL.
	URL string

	Title           string
	MetaDescription string

	// H1 through H6 hold the concatenated text of every heading at that level.
	H1, H2, H3, H4, H5, H6 string

	// Words are the whitespace-delimited tokens of the visible body text.
	Words []string
}

// AllWords returns the visible words joined by single spaces.
func (r *Record) AllWords() string {
	return strings.Join(r.Words, " ")
}

// WordCount returns the number of visible words.
func (r *Record) WordCount() int {
	return len(r.Words)
}

// Values returns the record's fields in Columns order.
func (r *Record) Values() []string {
	count := strconv.Itoa(r.WordCount())
	return []string{
		r.URL,
		r.Title, r.MetaDescription,
		r.H1, r.H2, r.H3, r.H4, r.H5, r.H6,
		count,
		r.AllWords(), count,
	}
}

// Validate returns an error if the record cannot be written.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// RecordWriter persists records to the output.
type RecordWriter interface {
	// WriteRecord appends a single record. A record is either written in
	// full or not at all.
	WriteRecord(ctx context.Context, r *Record) error

	// Close releases any resources held by the writer.
	Close() error
}
