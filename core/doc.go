// Package core defines the shared types used across the logchan toolkit.
//
// It provides the Severity type for level filtering, the Record type
// that represents a single log event, and the Caller helper for
// call-site source location capture.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. A capturer gets a Record with GetRecord; ownership
// travels with the record through the dispatcher to the active writer,
// which returns it with PutRecord once every channel has consumed it.
// The pool pre-allocates the text buffer with capacity 128, which
// covers most log statements without a grow.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package core
