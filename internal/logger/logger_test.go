package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range testCases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: "warn"})

	l.Info("dropped")
	l.Warn("kept", "round", 1100)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "kept" {
		t.Errorf("expected msg 'kept', got %v", entry["msg"])
	}
	if entry["round"] != float64(1100) {
		t.Errorf("expected round 1100, got %v", entry["round"])
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Config{Format: "text"}).Info("hello", "tier", 2)

	if !strings.Contains(buf.String(), "msg=hello") || !strings.Contains(buf.String(), "tier=2") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}
