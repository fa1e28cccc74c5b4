// Package rtlog provides the renderer's logging sink: a small Printf-style
// interface, backed by a zap.SugaredLogger, so the render loop can report
// pass/frame progress without depending on zap's richer API directly.
package rtlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the minimal sink the renderer writes progress and diagnostics
// to. ZapLogger below is the production implementation; tests can
// substitute their own.
type Logger interface {
	Printf(format string, args ...interface{})
}

// ZapLogger adapts a zap.SugaredLogger to Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a ZapLogger writing human-readable, colorized console output
// at the given level ("debug", "info", "warn", "error"; defaults to info).
func New(level string) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stdout"}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// NewDefault builds a ZapLogger at info level, falling back to a bare
// stdout logger if zap construction somehow fails (e.g. an unwritable
// working directory under //build sandboxes).
func NewDefault() *ZapLogger {
	l, err := New("info")
	if err == nil {
		return l
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)
	return &ZapLogger{sugar: zap.New(core).Sugar()}
}

// Printf implements Logger.
func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Sync flushes any buffered log entries; call before process exit.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
