package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/altlist/pkg/observability"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	// Test that it can log
	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestDebugHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	registerDebugHooks(newLogger(&buf, log.DebugLevel))

	ctx := context.Background()
	observability.Pipeline().OnFetchStart(ctx, "README.md")
	observability.Pipeline().OnWriteComplete(ctx, "items.json", 3, time.Millisecond, nil)
	observability.Cache().OnCacheHit(ctx, "redis")
	observability.HTTP().OnResponse(ctx, "GET", "api.github.com", "/repos/a/b", 200, time.Millisecond)
	observability.HTTP().OnError(ctx, "GET", "api.github.com", "/repos/a/b", errors.New("connection refused"))

	out := buf.String()
	for _, want := range []string{"fetch started", "write complete", "cache hit", "backend=redis", "status=200", "connection refused"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	observability.Pipeline().OnFetchStart(context.Background(), "quiet")
	if buf.Len() != 0 {
		t.Fatalf("info level should not log hook events: %s", buf.String())
	}

	c.SetLogLevel(LogDebug)
	observability.Pipeline().OnFetchStart(context.Background(), "loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("debug level should log hook events: %s", buf.String())
	}
}
