package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bikeshare/bikeshare/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bikeshare.log")
	logger, err := New(config.LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dataset loaded", zap.Int("rows", 42))
	logger.Debug("filtered out")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "dataset loaded") || !strings.Contains(out, "rows") {
		t.Errorf("log output missing info entry: %q", out)
	}
	if strings.Contains(out, "filtered out") {
		t.Errorf("debug entry should be below the info level: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestForUI(t *testing.T) {
	logger, err := ForUI(config.LogConfig{Level: "debug"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Error("TUI logger without a file should be a no-op")
	}

	path := filepath.Join(t.TempDir(), "tui.log")
	logger, err = ForUI(config.LogConfig{Level: "debug", File: path}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Error("TUI logger with a file should honour the configured level")
	}
}
