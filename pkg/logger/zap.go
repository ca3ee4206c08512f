package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap forwards to a *zap.Logger.
type Zap struct {
	z *zap.Logger
}

var _ Logger = (*Zap)(nil)

// NewZap wraps z. A nil logger is replaced by zap.NewNop.
func NewZap(z *zap.Logger) *Zap {
	if z == nil {
		z = zap.NewNop()
	}
	return &Zap{z: z}
}

// NewProduction builds a JSON zap logger at the requested level
// ("debug", "info", "warn", "error").
func NewProduction(level string) (*Zap, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}
	return NewZap(z), nil
}

// Unwrap exposes the underlying zap logger.
func (l *Zap) Unwrap() *zap.Logger { return l.z }

// Sync flushes buffered entries.
func (l *Zap) Sync() error { return l.z.Sync() }

func (l *Zap) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &Zap{z: l.z.With(toZap(fields)...)}
}

func (l *Zap) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZap(fields)...) }
func (l *Zap) Info(msg string, fields ...Field)  { l.z.Info(msg, toZap(fields)...) }
func (l *Zap) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZap(fields)...) }
func (l *Zap) Error(msg string, fields ...Field) { l.z.Error(msg, toZap(fields)...) }

func toZap(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok && f.Key == "error" {
			out = append(out, zap.Error(err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
