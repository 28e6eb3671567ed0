// Package logging builds the zap logger used by the strata binaries.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = zapcore.InfoLevel

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "severity",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// Level parses level and falls back to info when it is empty or unknown.
func Level(level string) zap.AtomicLevel {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.NewAtomicLevelAt(defaultLevel)
	}
	return atomic
}

// New builds a JSON logger writing to stderr.
func New(level string) (*zap.Logger, error) {
	cfg := &zap.Config{
		Level:            Level(level),
		Encoding:         "json",
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build(zap.AddStacktrace(zap.DPanicLevel))
}

// NewWriter builds a JSON logger writing to w. Used by commands that redirect
// their output.
func NewWriter(w io.Writer, level string) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(w),
		Level(level),
	)
	return zap.New(core, zap.AddStacktrace(zap.DPanicLevel))
}

// Install replaces the zap globals with logger and returns the undo func.
func Install(logger *zap.Logger) func() {
	return zap.ReplaceGlobals(logger)
}
