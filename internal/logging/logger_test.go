package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("shown warn", "path", "notes.md")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("records below the level were written: %s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "path=notes.md") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf, Service: "cli"})

	l.With("command", "duplicate").Info("resolved")

	out := buf.String()
	for _, want := range []string{"service=cli", "command=duplicate", "resolved"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l := New(Config{Level: LevelInfo, LogDir: dir, Service: "test", Quiet: true})

	path := l.FilePath()
	if path == "" {
		t.Fatal("expected a file sink to be opened")
	}
	l.Info("to file", "count", 3)
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log file is not JSON: %v (%s)", err, data)
	}
	if rec["msg"] != "to file" || rec["service"] != "test" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestUnwritableLogDirFallsBack(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	l := New(Config{LogDir: filepath.Join(blocker, "logs"), Output: &buf})
	defer l.Close()

	if l.FilePath() != "" {
		t.Errorf("expected no file sink, got %s", l.FilePath())
	}
	l.Info("still logs")
	if !strings.Contains(buf.String(), "still logs") {
		t.Error("stderr handler should still receive records")
	}
}

func TestDiscardAndCloseWithoutFile(t *testing.T) {
	l := Discard()
	l.Error("dropped")
	if err := l.Close(); err != nil {
		t.Errorf("Close on logger without file: %v", err)
	}
}
