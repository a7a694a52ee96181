// Package cli implements the altlist command-line interface.
//
// # Commands
//
// The main commands are:
//   - build: Fetch, parse, classify, enrich and write the catalog artifact
//   - summary: Print the category summary of an existing artifact
//   - classify: Show which paid product an entry is matched to
//   - cache: Manage the GitHub response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. At debug
// level the observability hooks are routed to the logger, so every HTTP
// request, cache lookup and pipeline stage shows up on stderr.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/altlist/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// debugHooks logs every observability event at debug level.
type debugHooks struct {
	logger *log.Logger
}

func registerDebugHooks(l *log.Logger) {
	h := &debugHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h *debugHooks) OnFetchStart(_ context.Context, location string) {
	h.logger.Debug("fetch started", "location", location)
}

func (h *debugHooks) OnFetchComplete(_ context.Context, location string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "location", location, "duration", d, "error", err)
		return
	}
	h.logger.Debug("fetch complete", "location", location, "bytes", size, "duration", d)
}

func (h *debugHooks) OnParseComplete(_ context.Context, entries, dropped int, d time.Duration) {
	h.logger.Debug("parse complete", "entries", entries, "dropped", dropped, "duration", d)
}

func (h *debugHooks) OnEntry(_ context.Context, slug string, enriched, overridden bool) {
	h.logger.Debug("record", "slug", slug, "enriched", enriched, "overridden", overridden)
}

func (h *debugHooks) OnWriteComplete(_ context.Context, path string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("write complete", "path", path, "records", records, "duration", d)
}

func (h *debugHooks) OnCacheHit(_ context.Context, backend string) {
	h.logger.Debug("cache hit", "backend", backend)
}

func (h *debugHooks) OnCacheMiss(_ context.Context, backend string) {
	h.logger.Debug("cache miss", "backend", backend)
}

func (h *debugHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.logger.Debug("cache set", "backend", backend, "bytes", size)
}

func (h *debugHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *debugHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *debugHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "error", err)
}
