package logging

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// Format is the output format of the logger
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.Default())
}

// Default returns the process-wide logger
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
}

// New creates a logger writing to w. Personal identifiers carried by the
// chat domain (national ID, fund card number) are redacted before output.
func New(w io.Writer, level slog.Level, format Format) (*slog.Logger, error) {
	filter := masq.New(
		masq.WithFieldName("IDNumber"),
		masq.WithFieldName("HMOCardNumber"),
		masq.WithFieldPrefix("secret_"),
	)

	var handler slog.Handler
	switch format {
	case FormatConsole:
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(filter),
			clog.WithSource(true),
		)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})
	default:
		return nil, goerr.New("unknown log format", goerr.V("format", format))
	}

	return slog.New(handler), nil
}

type ctxLoggerKey struct{}

// With binds the logger to the context
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger bound to the context, or the default logger
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}

// LevelCritical is used for failures that degrade the service but must not
// stop it, such as a knowledge base that could not be loaded at startup.
const LevelCritical = slog.Level(12)

// Critical logs at critical severity via the context logger
func Critical(ctx context.Context, msg string, args ...any) {
	From(ctx).Log(ctx, LevelCritical, msg, args...)
}
