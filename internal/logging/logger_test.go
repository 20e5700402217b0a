package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"", Info, false},
		{" Warning ", Warn, false},
		{"error", Error, false},
		{"verbose", Info, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter("edc", Warn, &buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Messages below the level leaked:\n%s", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("Expected 2 lines, got:\n%s", out)
	}
	if !strings.Contains(out, "WARN  [edc] shown 3") || !strings.Contains(out, "ERROR [edc] shown 4") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter("edc", Debug, &buf).Named("history")
	l.Info("hello")

	if !strings.Contains(buf.String(), "[edc/history] hello") {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}

func TestDiscardAndNil(t *testing.T) {
	Discard().Error("nothing")

	var l *Logger
	l.Error("nil loggers are silent")
}

func TestFileSink(t *testing.T) {
	file := filepath.Join(t.TempDir(), "edc.log")
	l := New("edc", Options{Level: Info, File: file})
	l.Info("written to %s", "file")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("Log file missing message: %s", data)
	}
}
