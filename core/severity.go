package core

import "strings"

// Severity represents the severity of a log record
type Severity int8

const (
	// TraceSeverity for very fine-grained diagnostic output
	TraceSeverity Severity = iota
	// DebugSeverity for detailed debugging information
	DebugSeverity
	// InfoSeverity for general informational messages (default)
	InfoSeverity
	// WarnSeverity for warning messages
	WarnSeverity
	// ErrorSeverity for error messages
	ErrorSeverity
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case TraceSeverity:
		return "TRACE"
	case DebugSeverity:
		return "DEBUG"
	case InfoSeverity:
		return "INFO"
	case WarnSeverity:
		return "WARN"
	case ErrorSeverity:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity. Unknown strings
// resolve to InfoSeverity.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceSeverity
	case "DEBUG":
		return DebugSeverity
	case "INFO":
		return InfoSeverity
	case "WARN", "WARNING":
		return WarnSeverity
	case "ERROR":
		return ErrorSeverity
	default:
		return InfoSeverity
	}
}
