package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("", "info", time.UTC)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Must not panic.
	logger.Info("discarded")
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "app.log"), "chatty", time.UTC); err == nil {
		t.Error("New() should reject an unknown level")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := New(path, "debug", time.UTC)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("document loaded", zap.String("path", "book.pdf"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "document loaded") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := New(path, "warn", time.UTC)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn message should be logged")
	}
}
