package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageaudit"
)

// Ensure LoggingRecordWriter implements pageaudit.RecordWriter.
var _ pageaudit.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   pageaudit.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next pageaudit.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecord delegates to the wrapped writer and logs the outcome.
func (w *LoggingRecordWriter) WriteRecord(ctx context.Context, r *pageaudit.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write record",
			"url", r.URL,
			"words", r.WordCount(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecord(ctx, r)
}

// Close delegates to the wrapped writer.
func (w *LoggingRecordWriter) Close() error {
	return w.next.Close()
}
