package formatter

import (
	"bytes"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/streamkit/logchan/core"
)

// severityStyles maps each severity to its terminal style. Rendering
// degrades gracefully to plain text when the output profile has no
// color support.
var severityStyles = [...]lipgloss.Style{
	core.TraceSeverity: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.DebugSeverity: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.InfoSeverity:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	core.WarnSeverity:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ErrorSeverity: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

var severityTags = [...]string{
	core.TraceSeverity: "[TRACE]",
	core.DebugSeverity: "[DEBUG]",
	core.InfoSeverity:  "[INFO]",
	core.WarnSeverity:  "[WARN]",
	core.ErrorSeverity: "[ERROR]",
}

// ColorFormatter renders records as text with the severity tag colored
// by level. Intended for console channels attached to a terminal.
type ColorFormatter struct {
	Config
}

// NewColorFormatter creates a new color formatter
func NewColorFormatter(cfg Config) *ColorFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &ColorFormatter{Config: cfg}
}

// Format renders a record as colored text
func (f *ColorFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord renders a record into the given buffer
func (f *ColorFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')

	if int(rec.Level) < len(severityTags) && rec.Level >= 0 {
		buf.WriteString(severityStyles[rec.Level].Render(severityTags[rec.Level]))
	} else {
		buf.WriteString("[UNKNOWN]")
	}
	buf.WriteByte(' ')

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
