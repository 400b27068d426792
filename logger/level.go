package logger

import "github.com/streamkit/logchan/core"

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	TraceSeverity = core.TraceSeverity
	DebugSeverity = core.DebugSeverity
	InfoSeverity  = core.InfoSeverity
	WarnSeverity  = core.WarnSeverity
	ErrorSeverity = core.ErrorSeverity
)

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	return core.ParseSeverity(s)
}
