package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger = NewComponentLogger(logger, "normalizer")
	logger.Info("loaded source file", String("path", "LAUSD-2024-Votes.csv"), Int("records", 42))

	line := buf.String()
	if !strings.Contains(line, "INFO normalizer: loaded source file") {
		t.Errorf("console line missing component prefix: %q", line)
	}
	if !strings.Contains(line, "records=42") {
		t.Errorf("console line missing attr: %q", line)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("phase complete", String("phase", "aggregate"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["msg"] != "phase complete" {
		t.Errorf("msg = %v, want %q", decoded["msg"], "phase complete")
	}
	if decoded["level"] != "debug" {
		t.Errorf("level = %v, want debug", decoded["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("dropped", Error(nil))
	if logger.Handler().Enabled(context.Background(), 0) {
		t.Error("noop handler should be disabled at every level")
	}
}
