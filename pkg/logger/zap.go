package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap writes JSON lines through a zap production logger.
type Zap struct {
	sugar *zap.SugaredLogger
}

func NewZap(level string) (*Zap, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return WrapZap(logger), nil
}

func WrapZap(logger *zap.Logger) *Zap {
	return &Zap{sugar: logger.Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (z *Zap) Debugf(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
func (z *Zap) Infof(format string, args ...interface{})  { z.sugar.Infof(format, args...) }
func (z *Zap) Warnf(format string, args ...interface{})  { z.sugar.Warnf(format, args...) }
func (z *Zap) Errorf(format string, args ...interface{}) { z.sugar.Errorf(format, args...) }
func (z *Zap) Fatalf(format string, args ...interface{}) { z.sugar.Fatalf(format, args...) }

// Sync flushes buffered entries.
func (z *Zap) Sync() error {
	return z.sugar.Sync()
}
