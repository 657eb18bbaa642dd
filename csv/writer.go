// Package csv appends page records to a CSV file.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pageaudit"
)

// Ensure Writer implements pageaudit.RecordWriter at compile time.
var _ pageaudit.RecordWriter = (*Writer)(nil)

// Writer appends records to a CSV file, one row per record.
// The header row is written only when the file is missing or empty, so
// repeated runs against the same path keep adding rows under one header.
type Writer struct {
	path string
}

// NewWriter creates a Writer for the file at path.
// The file is not touched until the first record is written.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRecord appends r to the file, creating it with a header if needed.
// The row is encoded in full before a single write to the file.
func (w *Writer) WriteRecord(ctx context.Context, r *pageaudit.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", w.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", w.path, err)
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if info.Size() == 0 {
		if err := cw.Write(pageaudit.Columns()); err != nil {
			return err
		}
	} else {
		terminated, err := endsWithNewline(f, info.Size())
		if err != nil {
			return fmt.Errorf("reading %s: %w", w.path, err)
		}
		if !terminated {
			buf.WriteByte('\n')
		}
	}
	if err := cw.Write(r.Values()); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	return f.Close()
}

// Close is a no-op; the file is opened and closed for every record.
func (w *Writer) Close() error {
	return nil
}

// endsWithNewline reports whether the last byte of a size-byte file is '\n'.
// Files written by older tooling end without a row terminator.
func endsWithNewline(r io.ReaderAt, size int64) (bool, error) {
	last := make([]byte, 1)
	if _, err := r.ReadAt(last, size-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}
