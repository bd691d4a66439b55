package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds configuration for the process logger
type Logger struct {
	level  string
	format string
	output string

	ring *logging.RingBuffer
}

// Flags returns CLI flags for logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("MEDASSIST_LOG_LEVEL"),
			Destination: &l.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			Value:       "console",
			Sources:     cli.EnvVars("MEDASSIST_LOG_FORMAT"),
			Destination: &l.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output destination ('-' for stdout, or a file path)",
			Value:       "-",
			Sources:     cli.EnvVars("MEDASSIST_LOG_OUTPUT"),
			Destination: &l.output,
		},
	}
}

// LogValue renders the configuration for startup logging
func (l *Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.level),
		slog.String("format", l.format),
		slog.String("output", l.output),
	)
}

// Ring returns the in-memory tail of recent log lines. It is only
// available after Configure.
func (l *Logger) Ring() *logging.RingBuffer {
	return l.ring
}

// Configure builds the process logger and installs it as the default.
// All log output is mirrored into a ring buffer so the /logs endpoint
// can serve the recent tail. The returned closer releases the log file
// if one was opened.
func (l *Logger) Configure() (func(), error) {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	level, ok := levels[l.level]
	if !ok {
		return nil, goerr.New("unknown log level", goerr.V("level", l.level))
	}

	closer := func() {}
	var out io.Writer = os.Stdout
	if l.output != "-" {
		f, err := os.OpenFile(l.output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", l.output))
		}
		out = f
		closer = func() {
			_ = f.Close()
		}
	}

	l.ring = logging.NewRingBuffer(1000)

	logger, err := logging.New(io.MultiWriter(out, l.ring), level, logging.Format(l.format))
	if err != nil {
		closer()
		return nil, err
	}

	logging.SetDefault(logger)
	return closer, nil
}
