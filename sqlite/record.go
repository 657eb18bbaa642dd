package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pageaudit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pageaudit.RecordWriter = (*RecordStore)(nil)

// StoredRecord is a record as persisted, with storage metadata.
type StoredRecord struct {
	ID          string
	Position    int
	ContentHash string
	FetchedAt   time.Time
	Record      *pageaudit.Record
}

// RecordStore appends page records to the records table.
type RecordStore struct {
	db *DB
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// WriteRecord inserts r as the next row. Rows written by earlier runs are kept.
func (s *RecordStore) WriteRecord(ctx context.Context, r *pageaudit.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	allWords := r.AllWords()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (
			id, position, url, title, meta_description,
			h1, h2, h3, h4, h5, h6,
			text_length_words, all_words, total_words,
			content_hash, fetched_at
		)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM records), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), r.URL, r.Title, r.MetaDescription,
		r.H1, r.H2, r.H3, r.H4, r.H5, r.H6,
		r.WordCount(), allWords, r.WordCount(),
		hashContent(allWords), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindRecords returns stored records in insertion order.
// If url is non-empty only records for that page are returned.
func (s *RecordStore) FindRecords(ctx context.Context, url string) ([]*StoredRecord, error) {
	var query strings.Builder
	var args []any
	query.WriteString(`
		SELECT id, position, url, title, meta_description,
			h1, h2, h3, h4, h5, h6, all_words, content_hash, fetched_at
		FROM records`)
	if url != "" {
		query.WriteString(" WHERE url = ?")
		args = append(args, url)
	}
	query.WriteString(" ORDER BY position")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*StoredRecord
	for rows.Next() {
		var (
			sr        StoredRecord
			r         pageaudit.Record
			allWords  string
			fetchedAt string
		)
		if err := rows.Scan(&sr.ID, &sr.Position, &r.URL, &r.Title, &r.MetaDescription,
			&r.H1, &r.H2, &r.H3, &r.H4, &r.H5, &r.H6, &allWords, &sr.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}
		r.Words = strings.Fields(allWords)
		if sr.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}
		sr.Record = &r
		out = append(out, &sr)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *RecordStore) Close() error {
	return s.db.Close()
}
