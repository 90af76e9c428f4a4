package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
)

// Counts holds the number of records handled per level.
// It is shared by a handler and every handler derived from it.
type Counts struct {
	debug atomic.Int64
	info  atomic.Int64
	warn  atomic.Int64
	err   atomic.Int64
}

func (c *Counts) add(level slog.Level) {
	switch {
	case level >= slog.LevelError:
		c.err.Add(1)
	case level >= slog.LevelWarn:
		c.warn.Add(1)
	case level >= slog.LevelInfo:
		c.info.Add(1)
	default:
		c.debug.Add(1)
	}
}

// Errors returns the number of error-level records.
func (c *Counts) Errors() int {
	return int(c.err.Load())
}

// Warnings returns the number of warning-level records.
func (c *Counts) Warnings() int {
	return int(c.warn.Load())
}

// Infos returns the number of info-level records.
func (c *Counts) Infos() int {
	return int(c.info.Load())
}

// Debugs returns the number of debug-level records.
func (c *Counts) Debugs() int {
	return int(c.debug.Load())
}

// DiagnosticHandler wraps an slog.Handler. Every record goes to the
// primary handler; records at slog.LevelError and above also go to the
// error handler, whatever the primary handler's level. Each handled record
// is counted.
type DiagnosticHandler struct {
	// handler receives every enabled record.
	handler slog.Handler

	// errHandler receives error records. May be nil.
	errHandler slog.Handler

	counts *Counts
}

// NewDiagnosticHandler creates a new DiagnosticHandler.
// If handler is nil, slog.Default().Handler() is used. errHandler may be nil.
func NewDiagnosticHandler(handler, errHandler slog.Handler) *DiagnosticHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &DiagnosticHandler{handler: handler, errHandler: errHandler, counts: &Counts{}}
}

// Counts returns the record counts.
func (h *DiagnosticHandler) Counts() *Counts {
	return h.counts
}

// Enabled reports whether either handler handles records at the given level.
func (h *DiagnosticHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.handler.Enabled(ctx, level) {
		return true
	}
	return h.errHandler != nil && level >= slog.LevelError && h.errHandler.Enabled(ctx, level)
}

// Handle passes the record to the primary handler and, for errors, to the
// error handler.
func (h *DiagnosticHandler) Handle(ctx context.Context, r slog.Record) error {
	h.counts.add(r.Level)

	var errs []error
	if h.handler.Enabled(ctx, r.Level) {
		errs = append(errs, h.handler.Handle(ctx, r.Clone()))
	}
	if h.errHandler != nil && r.Level >= slog.LevelError {
		errs = append(errs, h.errHandler.Handle(ctx, r.Clone()))
	}
	return errors.Join(errs...)
}

// WithAttrs returns a new handler with the given attributes added to both
// handlers. The counts are shared.
func (h *DiagnosticHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := &DiagnosticHandler{handler: h.handler.WithAttrs(attrs), counts: h.counts}
	if h.errHandler != nil {
		n.errHandler = h.errHandler.WithAttrs(attrs)
	}
	return n
}

// WithGroup returns a new handler with the given group name.
func (h *DiagnosticHandler) WithGroup(name string) slog.Handler {
	n := &DiagnosticHandler{handler: h.handler.WithGroup(name), counts: h.counts}
	if h.errHandler != nil {
		n.errHandler = h.errHandler.WithGroup(name)
	}
	return n
}

// level returns Debug when verbose and Warn otherwise.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text logger writing to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewDiagnosticHandler(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(verbose)}),
		nil,
	))
}

// NewRunLogger creates the logger of an index build. Everything at the
// configured level goes to w as text; error records are also written to
// errW. A nil errW disables the error stream. The returned handler gives
// access to the counts for the run summary.
func NewRunLogger(w, errW io.Writer, verbose bool) (*slog.Logger, *DiagnosticHandler) {
	var errHandler slog.Handler
	if errW != nil {
		errHandler = slog.NewTextHandler(errW, &slog.HandlerOptions{Level: slog.LevelError})
	}
	h := NewDiagnosticHandler(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(verbose)}),
		errHandler,
	)
	return slog.New(h), h
}
