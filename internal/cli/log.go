package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depinfo/pkg/errors"
)

// levelNames maps the accepted --log-level values to logger levels.
// CRITICAL messages are logged at FatalLevel without exiting.
var levelNames = map[string]log.Level{
	"CRITICAL": log.FatalLevel,
	"ERROR":    log.ErrorLevel,
	"WARNING":  log.WarnLevel,
	"INFO":     log.InfoLevel,
	"DEBUG":    log.DebugLevel,
}

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45") and levels
// carry their full names.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	l.SetStyles(logStyles())
	return l
}

// parseLogLevel converts a case-insensitive level name to a logger level.
func parseLogLevel(s string) (log.Level, error) {
	if level, ok := levelNames[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return level, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidLogLevel,
		"invalid log level %q: expected CRITICAL, ERROR, WARNING, INFO or DEBUG", s)
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Resolved 42 packages (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
