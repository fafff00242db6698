package logging

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

type captureWriter struct {
	lines []string
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.lines = append(w.lines, string(p))
	return len(p), nil
}

func TestConsoleHandlerFormatsAttrs(t *testing.T) {
	writer := &captureWriter{}
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(writer, levelVar))

	logger.Info("processed file", slog.String(FieldFile, "/tmp/a.m3u"), slog.Int("entries", 12))

	if len(writer.lines) != 1 {
		t.Fatalf("expected one line, got %d", len(writer.lines))
	}
	line := writer.lines[0]
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "processed file") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "file=/tmp/a.m3u") || !strings.Contains(line, "entries=12") {
		t.Fatalf("attrs missing from line: %q", line)
	}
}

func TestConsoleHandlerQuotesSpacedValues(t *testing.T) {
	writer := &captureWriter{}
	logger := slog.New(newConsoleHandler(writer, new(slog.LevelVar)))

	logger.Warn("skipped", slog.String("reason", "decode failed badly"))
	if !strings.Contains(writer.lines[0], `reason="decode failed badly"`) {
		t.Fatalf("spaced value not quoted: %q", writer.lines[0])
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	writer := &captureWriter{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(writer, levelVar))

	logger.Info("hidden")
	logger.Warn("shown")

	if len(writer.lines) != 1 || !strings.Contains(writer.lines[0], "shown") {
		t.Fatalf("level filtering broken: %v", writer.lines)
	}
}

func TestWithContextAttachesRunID(t *testing.T) {
	writer := &captureWriter{}
	logger := slog.New(newConsoleHandler(writer, new(slog.LevelVar)))

	ctx := WithRunID(context.Background(), "run-123")
	WithContext(ctx, logger).Info("hello")

	if !strings.Contains(writer.lines[0], "run_id=run-123") {
		t.Fatalf("run id missing: %q", writer.lines[0])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if parseLevel("nonsense") != slog.LevelInfo {
		t.Fatal("unknown level should default to info")
	}
	if parseLevel("debug") != slog.LevelDebug {
		t.Fatal("debug level not parsed")
	}
}
