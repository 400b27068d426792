// Package formatter defines how log records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which renders into a caller-provided buffer.
// Channels check for BufferFormatter at construction time and prefer
// it when available, eliminating the intermediate byte slice
// allocation on the write path.
//
// Both built-in formatters implement both interfaces. TextFormatter
// produces a plain line; ColorFormatter additionally colors the
// severity tag using lipgloss, which degrades to plain output when
// the terminal has no color support. Both use a pooled bytes.Buffer
// internally and rely on Go's Append-style functions
// (time.AppendFormat, strconv.Itoa) on the hot path, and both
// pre-compute the severity tags so the common path is a single
// WriteString call.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
