package logger

import "github.com/streamkit/logchan/core"

// Writer is the delivery strategy between the dispatcher and its
// channels: synchronous (inline on the caller's goroutine) or
// asynchronous (queued, drained by a background worker).
type Writer interface {
	// Write delivers one record to the dispatcher's channels.
	// Ownership of the record transfers to the writer.
	Write(rec *core.Record)

	// Close flushes pending records and releases resources
	Close() error
}

// SyncWriter delivers each record inline on the caller's goroutine.
// It carries no state beyond the dispatcher reference.
type SyncWriter struct {
	logger *Logger
}

// NewSyncWriter creates a synchronous writer bound to the given dispatcher.
func NewSyncWriter(l *Logger) *SyncWriter {
	return &SyncWriter{logger: l}
}

// Write fans the record out immediately and recycles it.
func (w *SyncWriter) Write(rec *core.Record) {
	w.logger.writeChannels(rec)
	core.PutRecord(rec)
}

// Close is a no-op; a synchronous writer holds nothing back.
func (w *SyncWriter) Close() error {
	return nil
}
