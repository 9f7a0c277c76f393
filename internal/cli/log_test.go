package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

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

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(5 * time.Millisecond)
	prog.done("Exploded nb.ipynb")

	if !strings.Contains(buf.String(), "Exploded nb.ipynb (") {
		t.Errorf("progress.done() output = %q, want message with duration", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should return log.Default() when none set")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()

	t.Run("silent at info level", func(t *testing.T) {
		var buf bytes.Buffer
		h := newLogHooks(newLogger(&buf, log.InfoLevel))
		h.OnExplodeStart(ctx, "/nb.ipynb.exploded", 3)
		h.OnFileWritten(ctx, "/nb.ipynb.exploded/metadata.json", 2)
		if buf.Len() != 0 {
			t.Errorf("hooks logged at info level: %q", buf.String())
		}
	})

	t.Run("debug level", func(t *testing.T) {
		var buf bytes.Buffer
		h := newLogHooks(newLogger(&buf, log.DebugLevel))
		h.OnExplodeStart(ctx, "/nb.ipynb.exploded", 3)
		h.OnCellExploded(ctx, "intro", 2)
		h.OnFileWritten(ctx, "/nb.ipynb.exploded/intro/source.md", 7)
		h.OnExplodeComplete(ctx, "/nb.ipynb.exploded", 3, time.Millisecond, nil)
		h.OnRecombineStart(ctx, "/nb.ipynb.exploded")
		h.OnCellRecombined(ctx, "intro", 2)
		h.OnRecombineComplete(ctx, "/nb.ipynb.exploded", 3, 0, errors.New("boom"))

		out := buf.String()
		for _, want := range []string{
			"Exploding notebook", "Wrote cell", "id=intro", "Wrote file",
			"bytes=7", "Explode finished", "Recombining notebook",
			"Read cell", "Recombine failed", "err=boom",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("log output missing %q:\n%s", want, out)
			}
		}
	})
}
