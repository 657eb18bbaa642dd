package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/pageaudit"
)

var _ pageaudit.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of pageaudit.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, r *pageaudit.Record) error
	CloseFn       func() error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, r *pageaudit.Record) error {
	return w.WriteRecordFn(ctx, r)
}

func (w *RecordWriter) Close() error {
	return w.CloseFn()
}

// MemoryWriter is a pageaudit.RecordWriter that keeps records in memory.
type MemoryWriter struct {
	mu      sync.Mutex
	Records []*pageaudit.Record
}

func (w *MemoryWriter) WriteRecord(_ context.Context, r *pageaudit.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Records = append(w.Records, r)
	return nil
}

func (w *MemoryWriter) Close() error {
	return nil
}

// URLs returns the URLs of the written records in write order.
func (w *MemoryWriter) URLs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	urls := make([]string, len(w.Records))
	for i, r := range w.Records {
		urls[i] = r.URL
	}
	return urls
}
