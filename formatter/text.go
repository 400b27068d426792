package formatter

import (
	"bytes"
	"strconv"

	"github.com/streamkit/logchan/core"
)

// TextFormatter renders records as plain human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted severity strings to avoid multiple WriteString calls
var severityBrackets = [...]string{
	core.TraceSeverity: " [TRACE] ",
	core.DebugSeverity: " [DEBUG] ",
	core.InfoSeverity:  " [INFO] ",
	core.WarnSeverity:  " [WARN] ",
	core.ErrorSeverity: " [ERROR] ",
}

// Format renders a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord renders a record into the given buffer
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Severity - use pre-formatted string
	if int(rec.Level) < len(severityBrackets) && rec.Level >= 0 {
		buf.WriteString(severityBrackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Source location if enabled
	if f.Detail {
		buf.WriteByte('[')
		buf.WriteString(rec.File)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(rec.Line))
		if rec.Function != "" {
			buf.WriteByte(' ')
			buf.WriteString(rec.Function)
		}
		buf.WriteString("] ")
	}

	buf.WriteString(rec.Text())
	buf.WriteByte('\n')
}
