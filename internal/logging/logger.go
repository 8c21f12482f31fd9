// Package logging builds the zap loggers used by the command-line tool and
// adapts them to the parser.Logger interface consumed by the library packages.
package logging

import (
	"strings"

	"github.com/erraggy/specdiff/parser"
	"github.com/erraggy/specdiff/specerrors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel converts a level name (case-insensitive) to a zap level.
// An empty name means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, &specerrors.ConfigError{
			Option:  "log-level",
			Value:   level,
			Message: "must be one of " + strings.Join(Levels, ", "),
		}
	}
}

// New creates a JSON zap logger writing to stderr at the given level.
func New(level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	// Library packages log through ZapAdapter; skip its frame
	return cfg.Build(zap.AddCallerSkip(1))
}

// ZapAdapter implements parser.Logger over a *zap.SugaredLogger. Attributes
// are passed through as loosely-typed key-value pairs.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter wraps a *zap.Logger. If logger is nil, a no-op logger is used.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{logger: logger.Sugar()}
}

// Debug implements parser.Logger.
func (z *ZapAdapter) Debug(msg string, attrs ...any) {
	z.logger.Debugw(msg, attrs...)
}

// Info implements parser.Logger.
func (z *ZapAdapter) Info(msg string, attrs ...any) {
	z.logger.Infow(msg, attrs...)
}

// Warn implements parser.Logger.
func (z *ZapAdapter) Warn(msg string, attrs ...any) {
	z.logger.Warnw(msg, attrs...)
}

// Error implements parser.Logger.
func (z *ZapAdapter) Error(msg string, attrs ...any) {
	z.logger.Errorw(msg, attrs...)
}

// With implements parser.Logger.
func (z *ZapAdapter) With(attrs ...any) parser.Logger {
	return &ZapAdapter{logger: z.logger.With(attrs...)}
}

// Sync flushes buffered log entries.
func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

var _ parser.Logger = (*ZapAdapter)(nil)
