// Package cli implements the nbexplode command-line interface.
//
// The CLI explodes a notebook into a directory tree, or recombines such a
// tree back into a notebook, using the cobra command library and the
// charmbracelet/log logger.
//
// # Logging
//
// --verbose (-v) switches to debug-level logging, which reports every cell
// and file written. Loggers are passed through context.Context and are also
// installed as [observability.TransformHooks] so the transform packages can
// report progress without depending on a logger.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nbexplode/pkg/observability"
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

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Exploded 12 cells (4ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports transform events at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.TransformHooks = (*logHooks)(nil)

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnExplodeStart(_ context.Context, dir string, cells int) {
	h.logger.Debug("Exploding notebook", "dir", dir, "cells", cells)
}

func (h *logHooks) OnCellExploded(_ context.Context, id string, outputs int) {
	h.logger.Debug("Wrote cell", "id", id, "outputs", outputs)
}

func (h *logHooks) OnExplodeComplete(_ context.Context, dir string, cells int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Explode failed", "dir", dir, "err", err)
		return
	}
	h.logger.Debug("Explode finished", "dir", dir, "cells", cells, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnRecombineStart(_ context.Context, dir string) {
	h.logger.Debug("Recombining notebook", "dir", dir)
}

func (h *logHooks) OnCellRecombined(_ context.Context, id string, outputs int) {
	h.logger.Debug("Read cell", "id", id, "outputs", outputs)
}

func (h *logHooks) OnRecombineComplete(_ context.Context, dir string, cells int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Recombine failed", "dir", dir, "err", err)
		return
	}
	h.logger.Debug("Recombine finished", "dir", dir, "cells", cells, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnFileWritten(_ context.Context, path string, size int) {
	h.logger.Debug("Wrote file", "path", path, "bytes", size)
}
