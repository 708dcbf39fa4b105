package database

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
)

type queryCounterKey struct{}

// QueryCounter counts the SQL statements issued with a context
type QueryCounter struct {
	n atomic.Int64
}

// Count returns the number of statements seen so far
func (c *QueryCounter) Count() int64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

// Add records n statements
func (c *QueryCounter) Add(n int64) {
	if c != nil {
		c.n.Add(n)
	}
}

// WithQueryCounter returns a context whose statements are counted by the returned counter
func WithQueryCounter(ctx context.Context) (context.Context, *QueryCounter) {
	counter := &QueryCounter{}
	return context.WithValue(ctx, queryCounterKey{}, counter), counter
}

// QueryCounterFrom returns the counter attached to ctx, if any
func QueryCounterFrom(ctx context.Context) *QueryCounter {
	if ctx == nil {
		return nil
	}
	counter, _ := ctx.Value(queryCounterKey{}).(*QueryCounter)
	return counter
}

// GormLogger forwards GORM output to the application logger
type GormLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger creates a GORM logger. level is one of silent, error, warn, info.
func NewGormLogger(coreLogger coreport.Logger, level string, slowThreshold time.Duration) logger.Interface {
	return &GormLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLevel(level),
		slowThreshold: slowThreshold,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// LogMode sets the log level for the logger
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"source": "database", "data": data})
	}
}

// Warn logs warn messages
func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"source": "database", "data": data})
	}
}

// Error logs error messages
func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"source": "database", "data": data})
	}
}

// Trace counts the statement against the request and logs errors, slow
// queries and, at info level, every statement
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if counter := QueryCounterFrom(ctx); counter != nil {
		counter.Add(1)
	}
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	if !failed && !slow && l.logLevel < logger.Info {
		return
	}

	sql, rows := fc()
	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "database",
	}
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if tableName := extractTableName(sql); tableName != "" {
		fields["table"] = tableName
	}

	switch {
	case failed && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL Error", fields)
	case slow && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

// extractQueryType returns the leading SQL verb
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE", "WITH"} {
		if strings.HasPrefix(sqlUpper, verb) {
			return verb
		}
	}
	return ""
}

// extractTableName returns the first table after FROM, INTO or UPDATE
func extractTableName(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	var start int
	switch {
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		start = len("UPDATE ")
	case strings.Contains(sqlUpper, " INTO "):
		start = strings.Index(sqlUpper, " INTO ") + len(" INTO ")
	case strings.Contains(sqlUpper, " FROM "):
		start = strings.Index(sqlUpper, " FROM ") + len(" FROM ")
	default:
		return ""
	}

	remainder := strings.TrimSpace(sql[start:])
	if end := strings.IndexAny(remainder, " (,"); end >= 0 {
		remainder = remainder[:end]
	}
	return strings.Trim(remainder, `"`)
}
