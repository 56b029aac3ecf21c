// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels,
// and carries request-scoped loggers through context.Context.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is the name of the service for log context
	ServiceName string `env:"SERVICE_NAME" envDefault:"trip-info"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:        "info",
		Format:       "json",
		EnableCaller: false,
		ServiceName:  "trip-info",
	}
}

// Logger wraps zerolog.Logger with additional context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with a custom output writer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		zctx = zctx.Caller()
	}

	return &Logger{Logger: zctx.Logger()}
}

// WithField returns a new logger with an additional string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID returns a logger with request ID context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

// WithProvider returns a logger with provider context.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithField("provider", provider)
}

// WithOperation returns a logger tagged with an upstream operation name.
func (l *Logger) WithOperation(operation string) *Logger {
	return l.WithField("operation", operation)
}

// Nop returns a disabled logger that produces no output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

type ctxKey struct{}

// ToContext stores l in ctx.
func ToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or fallback when there is none.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	if fallback == nil {
		return Nop()
	}
	return fallback
}
