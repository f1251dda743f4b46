package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr).
type Logger struct {
	Enabled bool
	W       io.Writer

	zl *zap.Logger
}

// New returns a Logger writing to w.
func New(enabled bool, w io.Writer) *Logger {
	return &Logger{Enabled: enabled, W: w}
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.core().Info(fmt.Sprintf(format, args...))
}

// With writes msg followed by structured fields, e.g. timings.
func (l *Logger) With(msg string, fields ...zap.Field) {
	if l == nil || !l.Enabled {
		return
	}
	l.core().Info(msg, fields...)
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	if l == nil || l.zl == nil {
		return nil
	}
	return l.zl.Sync()
}

// core lazily builds a message-only console logger so that Printf output
// stays a bare line per message.
func (l *Logger) core() *zap.Logger {
	if l.zl != nil {
		return l.zl
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	l.zl = zap.New(zapcore.NewCore(enc, zapcore.AddSync(l.W), zapcore.DebugLevel))
	return l.zl
}
