package logger

import (
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the zap adapter
type Options struct {
	Level      string
	Format     string // "json" or "console"
	Output     string // "stdout", "stderr" or a file path
	CallerInfo bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a zap-based logger from options
func NewZapLogger(opts Options) (core.Logger, error) {
	var cfg zap.Config

	if opts.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo

	if opts.Output != "" {
		cfg.OutputPaths = []string{opts.Output}
	}

	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(core.ParseLogLevel(opts.Level)))
	cfg.Level = atomicLevel

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  atomicLevel,
	}, nil
}

// NewDefaultLogger creates a console logger at info level
func NewDefaultLogger() core.Logger {
	l, err := NewZapLogger(Options{Level: "info", Format: "console"})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return l
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel changes the minimum level of this logger and all of its children
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zap.DebugLevel:
		return core.LogLevelDebug
	case zap.WarnLevel:
		return core.LogLevelWarn
	case zap.ErrorLevel, zap.DPanicLevel, zap.PanicLevel, zap.FatalLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// With returns a child logger sharing the level
func (l *ZapLogger) With(fields map[string]any) core.Logger {
	return &ZapLogger{
		logger: l.logger.With(mapToZapFields(fields)...),
		level:  l.level,
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
