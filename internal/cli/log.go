package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with a consistent style for CLI use.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks elapsed time for a stage and logs on completion.
type progress struct {
	logger *log.Logger
	name   string
	start  time.Time
}

// startProgress begins tracking a named stage.
func startProgress(logger *log.Logger, name string) *progress {
	logger.Debug("starting", "stage", name)
	return &progress{logger: logger, name: name, start: time.Now()}
}

// done logs the stage completion with elapsed time.
func (p *progress) done(keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	args := append([]any{"stage", p.name, "elapsed", elapsed}, keyvals...)
	p.logger.Debug("finished", args...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a context carrying the logger.
func withLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// loggerFromContext extracts the logger from context, or returns the default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}
