package logger

import "github.com/streamkit/logchan/core"

// Capturer accumulates one log statement. It is created at the call
// site with the severity and source location already captured, grows
// its record through chained Append calls, and hands the finished
// record to the dispatcher on Flush or Close.
//
// A Capturer is used by pointer; aliases share the same pending record,
// so passing one around never duplicates or loses a delivery. Exactly
// one record reaches the dispatcher per completion.
type Capturer struct {
	logger *Logger
	rec    *core.Record
}

// NewCapturer creates a capturer for the given dispatcher and
// severity. skip selects the call site reported as the record's source
// location: 0 is the caller of NewCapturer.
func NewCapturer(l *Logger, level core.Severity, skip int) *Capturer {
	file, function, line := core.Caller(skip + 2)
	return &Capturer{
		logger: l,
		rec:    core.GetRecord(level, file, function, line),
	}
}

// Append renders each value into the pending record, in call order.
// No-op after Close.
func (c *Capturer) Append(vals ...interface{}) *Capturer {
	if c.rec != nil {
		c.rec.Append(vals...)
	}
	return c
}

// Appendf renders a formatted string into the pending record.
// No-op after Close.
func (c *Capturer) Appendf(format string, args ...interface{}) *Capturer {
	if c.rec != nil {
		c.rec.Appendf(format, args...)
	}
	return c
}

// Flush hands the accumulated text off immediately as one record and
// re-arms the capturer with a fresh record at the same severity and
// source location, freshly timestamped.
func (c *Capturer) Flush() *Capturer {
	if c.rec == nil {
		return c
	}
	level, file, function, line := c.rec.Level, c.rec.File, c.rec.Function, c.rec.Line
	c.logger.Write(c.rec)
	c.rec = core.GetRecord(level, file, function, line)
	return c
}

// Close completes the statement: any remaining accumulated text is
// handed off as a final record. A capturer with nothing accumulated
// emits nothing. Further Append calls are dropped.
func (c *Capturer) Close() {
	if c.rec == nil {
		return
	}
	if c.rec.Empty() {
		core.PutRecord(c.rec)
		c.rec = nil
		return
	}
	c.logger.Write(c.rec)
	c.rec = nil
}

// Capture starts a capturer at the given severity, recording the
// caller as the source location.
func (l *Logger) Capture(level core.Severity) *Capturer {
	return NewCapturer(l, level, 1)
}

// emit is the shared one-shot path behind the leveled helpers.
func (l *Logger) emit(level core.Severity, skip int, vals []interface{}) {
	c := NewCapturer(l, level, skip)
	c.rec.Append(vals...)
	c.Close()
}

// emitf is the shared formatted path behind the leveled helpers.
func (l *Logger) emitf(level core.Severity, skip int, format string, args []interface{}) {
	c := NewCapturer(l, level, skip)
	c.rec.Appendf(format, args...)
	c.Close()
}

// Trace logs the values at TraceSeverity
func (l *Logger) Trace(vals ...interface{}) { l.emit(core.TraceSeverity, 2, vals) }

// Debug logs the values at DebugSeverity
func (l *Logger) Debug(vals ...interface{}) { l.emit(core.DebugSeverity, 2, vals) }

// Info logs the values at InfoSeverity
func (l *Logger) Info(vals ...interface{}) { l.emit(core.InfoSeverity, 2, vals) }

// Warn logs the values at WarnSeverity
func (l *Logger) Warn(vals ...interface{}) { l.emit(core.WarnSeverity, 2, vals) }

// Error logs the values at ErrorSeverity
func (l *Logger) Error(vals ...interface{}) { l.emit(core.ErrorSeverity, 2, vals) }

// Tracef logs a formatted message at TraceSeverity
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.emitf(core.TraceSeverity, 2, format, args)
}

// Debugf logs a formatted message at DebugSeverity
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emitf(core.DebugSeverity, 2, format, args)
}

// Infof logs a formatted message at InfoSeverity
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emitf(core.InfoSeverity, 2, format, args)
}

// Warnf logs a formatted message at WarnSeverity
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emitf(core.WarnSeverity, 2, format, args)
}

// Errorf logs a formatted message at ErrorSeverity
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emitf(core.ErrorSeverity, 2, format, args)
}
