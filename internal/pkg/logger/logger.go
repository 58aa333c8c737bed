// Package logger exposes a process-global, Sugared Zap logger with optional
// OpenTelemetry log forwarding. Logs are emitted as JSON to stdout; the
// minimum level is configurable via functional options. When a telemetry
// LoggerProvider has been registered, an OTEL bridge core is attached so log
// records are also exported through the telemetry pipeline.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/voidbay/paygate/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance, set once by Init.
	logger *zap.SugaredLogger

	// initOnce guards against repeated initialization.
	initOnce sync.Once
)

// config holds the options applied before the logger is built.
type config struct {
	level  string    // minimum log level (debug, info, warn, error, panic, fatal)
	output io.Writer // destination for the JSON core
}

// Option customizes the logger prior to initialization.
type Option func(*config)

// WithLevel sets the minimum log level. Accepted values follow
// zapcore.ParseLevel: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects the JSON log core to the given writer. Intended for
// tests that want to capture or silence log output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init builds the global logger. The default configuration writes JSON to
// stdout at the "info" level. If telemetry.LoggerProvider() reports a
// registered provider, an otelzap bridge core is teed in so records reach the
// telemetry backend as well. Calls after the first successful initialization
// are no-ops.
func Init(opts ...Option) error {
	cfg := config{
		level:  "info",
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(cfg.output),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("", otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() error {
	return logger.Sync()
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, keysAndValues...)
}
