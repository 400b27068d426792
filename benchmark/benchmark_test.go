package benchmark

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/streamkit/logchan/channel"
	"github.com/streamkit/logchan/core"
	"github.com/streamkit/logchan/formatter"
	"github.com/streamkit/logchan/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newSyncLogger returns a logchan logger delivering inline to io.Discard.
func newSyncLogger() *logger.Logger {
	l := logger.New()
	l.Add(channel.NewConsoleChannel(channel.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	}))
	return l
}

// newAsyncLogger returns a logchan logger with background delivery to io.Discard.
func newAsyncLogger() *logger.Logger {
	l := newSyncLogger()
	l.SetWriter(logger.NewAsyncWriter(l))
	return l
}

// newZapLogger returns a zap.Logger that writes to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(zc)
}

// ---------------------------------------------------------------------------
// Scenario 1 – one-shot info message
// ---------------------------------------------------------------------------

func BenchmarkInfo(b *testing.B) {
	b.Run("logchan-sync", func(b *testing.B) {
		l := newSyncLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logchan-async", func(b *testing.B) {
		l := newAsyncLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		defer l.Sync()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – filtered-out record (below every channel's floor)
// ---------------------------------------------------------------------------

func BenchmarkFiltered(b *testing.B) {
	b.Run("logchan", func(b *testing.B) {
		l := logger.New()
		l.Add(channel.NewConsoleChannel(channel.ConsoleConfig{
			Writer:    io.Discard,
			Level:     core.ErrorSeverity,
			Formatter: formatter.NewTextFormatter(formatter.Config{}),
		}))
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("dropped message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
		l := zap.New(zc)
		defer l.Sync()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("dropped message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – parallel producers
// ---------------------------------------------------------------------------

func BenchmarkParallel(b *testing.B) {
	b.Run("logchan-async", func(b *testing.B) {
		l := newAsyncLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		defer l.Sync()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – capturer with chained appends
// ---------------------------------------------------------------------------

func BenchmarkCapturer(b *testing.B) {
	l := newSyncLogger()
	defer l.Close()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Capture(logger.InfoSeverity).
			Append("request ", i, " done").
			Close()
	}
}
