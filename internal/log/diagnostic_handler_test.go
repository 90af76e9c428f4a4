package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDiagnosticHandler_TeesErrors(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	logger, h := NewRunLogger(&out, &errOut, false)

	logger.Debug("hidden")
	logger.Info("progress")
	logger.Warn("page skipped", "page", "Broken")
	logger.Error("unparseable date", "series", "Boskone", "cell", "TBD")

	if strings.Contains(out.String(), "hidden") || strings.Contains(out.String(), "progress") {
		t.Errorf("below-warn records leaked into output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "page skipped") || !strings.Contains(out.String(), "unparseable date") {
		t.Errorf("expected warn and error in output:\n%s", out.String())
	}
	if strings.Contains(errOut.String(), "page skipped") {
		t.Error("warning written to the error stream")
	}
	if !strings.Contains(errOut.String(), "series=Boskone") {
		t.Errorf("expected error in error stream:\n%s", errOut.String())
	}

	if h.Counts().Warnings() != 1 || h.Counts().Errors() != 1 {
		t.Errorf("counts: warnings=%d errors=%d", h.Counts().Warnings(), h.Counts().Errors())
	}
}

func TestDiagnosticHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"verbose logs debug", true, true},
		{"quiet hides debug", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)
			logger.Debug("debug message")

			if got := strings.Contains(buf.String(), "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestDiagnosticHandler_ErrorsReachErrorStreamWhenPrimaryIsSilent(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	primary := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.Level(100)})
	h := NewDiagnosticHandler(primary, slog.NewTextHandler(&errOut, nil))
	slog.New(h).Error("boom")

	if !strings.Contains(errOut.String(), "boom") {
		t.Error("expected error record in error stream")
	}
}

func TestDiagnosticHandler_WithAttrsSharesCounts(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	logger, h := NewRunLogger(&out, &errOut, true)

	child := logger.With("series", "Minicon").WithGroup("row")
	child.Error("bad row", "index", 3)
	logger.Info("done")

	if h.Counts().Errors() != 1 || h.Counts().Infos() != 1 {
		t.Errorf("counts not shared: errors=%d infos=%d", h.Counts().Errors(), h.Counts().Infos())
	}
	if !strings.Contains(errOut.String(), "series=Minicon") || !strings.Contains(errOut.String(), "row.index=3") {
		t.Errorf("attributes missing from error stream:\n%s", errOut.String())
	}
}

func TestNewDiagnosticHandler_NilHandler(t *testing.T) {
	t.Parallel()

	h := NewDiagnosticHandler(nil, nil)
	if h.handler == nil {
		t.Error("expected default handler")
	}
	if h.Counts().Debugs() != 0 {
		t.Error("expected zero counts")
	}
}
