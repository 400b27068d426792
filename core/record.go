package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Record is one log entry: severity, timestamp, source location and a
// freeform text payload. The text is appended incrementally by a
// capturer; once the record is handed to the dispatcher it must be
// treated as immutable. Ownership transfers with it: the delivery path
// recycles the record after fan-out, producers never touch it again.
type Record struct {
	Time     time.Time
	Level    Severity
	File     string
	Function string
	Line     int

	text []byte
}

// Text returns the accumulated text payload.
func (r *Record) Text() string {
	return string(r.text)
}

// Append renders each value to text and concatenates it, in call
// order, with no separator between values.
func (r *Record) Append(vals ...interface{}) {
	for _, v := range vals {
		switch t := v.(type) {
		case string:
			r.text = append(r.text, t...)
		case []byte:
			r.text = append(r.text, t...)
		case error:
			r.text = append(r.text, t.Error()...)
		default:
			r.text = fmt.Append(r.text, v)
		}
	}
}

// Appendf renders a formatted string and concatenates it.
func (r *Record) Appendf(format string, args ...interface{}) {
	r.text = fmt.Appendf(r.text, format, args...)
}

// Empty reports whether no text has been accumulated yet.
func (r *Record) Empty() bool {
	return len(r.text) == 0
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			text: make([]byte, 0, 128),
		}
	},
}

// GetRecord retrieves a Record from the pool, stamped with the current
// time and the given severity and source location.
func GetRecord(level Severity, file, function string, line int) *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Level = level
	r.File = file
	r.Function = function
	r.Line = line
	r.text = r.text[:0]
	return r
}

// PutRecord returns a Record to the pool. Only the final owner of a
// record (the writer, after fan-out has completed) may call this.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	if cap(r.text) > 64*1024 { // don't keep very large buffers
		return
	}
	r.text = r.text[:0]
	r.File = ""
	r.Function = ""
	recordPool.Put(r)
}

// Caller returns the source location of the caller, skip frames up the
// stack. The file is reduced to its base name and the function to its
// bare name without package path.
func Caller(skip int) (file, function string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", "???", 0
	}
	file = filepath.Base(file)
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '.'); i >= 0 {
			function = function[i+1:]
		}
	}
	return file, function, line
}
