package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depinfo/pkg/errors"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog string
	}{
		{
			name:    "warning at warning level",
			level:   log.WarnLevel,
			logFunc: func(l *log.Logger) { l.Warn("test") },
			wantLog: "WARNING test",
		},
		{
			name:    "info at warning level",
			level:   log.WarnLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: "DEBUG test",
		},
		{
			name:    "critical at critical level",
			level:   log.FatalLevel,
			logFunc: func(l *log.Logger) { l.Log(log.FatalLevel, "test") },
			wantLog: "CRITICAL test",
		},
		{
			name:    "error at critical level",
			level:   log.FatalLevel,
			logFunc: func(l *log.Logger) { l.Error("test") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if tt.wantLog == "" {
				if buf.Len() != 0 {
					t.Errorf("unexpected log output %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("log output = %q, want it to contain %q", buf.String(), tt.wantLog)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"CRITICAL", log.FatalLevel},
		{"ERROR", log.ErrorLevel},
		{"WARNING", log.WarnLevel},
		{"info", log.InfoLevel},
		{" Debug ", log.DebugLevel},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		if err != nil {
			t.Errorf("parseLogLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "WARN", "verbose"} {
		if _, err := parseLogLevel(in); !errors.Is(err, errors.ErrCodeInvalidLogLevel) {
			t.Errorf("parseLogLevel(%q) error = %v, want %s", in, err, errors.ErrCodeInvalidLogLevel)
		}
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Resolved 3 packages")

	if !strings.Contains(buf.String(), "Resolved 3 packages (") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}

	var buf bytes.Buffer
	customLogger := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), customLogger)

	retrieved := loggerFromContext(ctx)
	if retrieved != customLogger {
		t.Error("loggerFromContext should return the custom logger")
	}
	retrieved.Info("test")
	if buf.Len() == 0 {
		t.Error("custom logger should write to buffer")
	}
}
