package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	l.Debug("hidden")
	l.Warn("shown", "key", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=1") {
		t.Errorf("expected warn message with field, got %q", out)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typefx.log")
	l, closer, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	l.Debug("tick", "run", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "run=3") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestOpenDiscard(t *testing.T) {
	l, closer, err := Open("", "info")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	l.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}
