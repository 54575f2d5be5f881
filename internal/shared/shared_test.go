package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" || second == "" {
		t.Fatal("expected non-empty ids")
	}
	if first == second {
		t.Error("expected unique ids")
	}
	if len(strings.Split(first, "-")) != 5 {
		t.Errorf("expected a uuid shape, got %s", first)
	}
}

func TestMarshalJSON(t *testing.T) {
	payload := map[string]string{"id": "m1"}

	t.Run("pretty", func(t *testing.T) {
		data, err := MarshalJSON(payload, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(data), "\n  \"id\"") {
			t.Errorf("expected indentation, got %q", data)
		}
	})

	t.Run("compact", func(t *testing.T) {
		data, err := MarshalJSON(payload, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != `{"id":"m1"}` {
			t.Errorf("expected compact JSON, got %q", data)
		}
	})

	t.Run("unmarshalable value fails", func(t *testing.T) {
		if _, err := MarshalJSON(make(chan int), false); err == nil {
			t.Error("expected a marshal error")
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	t.Run("creates the directory and file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "streamix.log")

		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		logger.Info("hello")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected the log file, got %v", err)
		}
		if !strings.Contains(string(data), "hello") {
			t.Errorf("expected the entry in the file, got %q", data)
		}
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		dir := t.TempDir()

		// A directory at the target path makes OpenFile fail.
		if _, err := NewFileLogger(dir); err == nil {
			t.Error("expected an error for a directory path")
		}
	})
}
