package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BIKESHARE_DATA_DIR", "BIKESHARE_UI", "BIKESHARE_PAGE_SIZE", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataDir != "." {
		t.Errorf("expected default data_dir '.', got %q", cfg.DataDir)
	}
	if cfg.PageSize != 5 {
		t.Errorf("expected default page_size 5, got %d", cfg.PageSize)
	}
	if cfg.UI != UIPlain {
		t.Errorf("expected default ui %q, got %q", UIPlain, cfg.UI)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("expected default log level 'error', got %q", cfg.Log.Level)
	}
	if len(cfg.Files) != 3 {
		t.Errorf("expected 3 city files, got %d", len(cfg.Files))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestDefaultConfigDoesNotShareFiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Files["chicago"] = "other.csv"
	if DefaultCityFiles["chicago"] != "chicago.csv" {
		t.Fatal("DefaultConfig must copy the city file map")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.PageSize != 5 {
		t.Errorf("expected default page size, got %d", cfg.PageSize)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
data_dir: /srv/bikeshare
files:
  washington: dc.csv
page_size: 10
ui: auto
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/bikeshare" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.PageSize != 10 {
		t.Errorf("page_size = %d, want 10", cfg.PageSize)
	}
	if cfg.UI != UIAuto {
		t.Errorf("ui = %q, want %q", cfg.UI, UIAuto)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Files["washington"] != "dc.csv" {
		t.Errorf("washington file = %q, want dc.csv", cfg.Files["washington"])
	}
	if cfg.Files["chicago"] != "chicago.csv" {
		t.Errorf("chicago file should keep its default, got %q", cfg.Files["chicago"])
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("page_size: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: /from/file\npage_size: 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BIKESHARE_DATA_DIR", "/from/env")
	t.Setenv("BIKESHARE_PAGE_SIZE", "3")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("data_dir = %q, want /from/env", cfg.DataDir)
	}
	if cfg.PageSize != 3 {
		t.Errorf("page_size = %d, want 3", cfg.PageSize)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_BadPageSizeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BIKESHARE_PAGE_SIZE", "five")
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for non-numeric BIKESHARE_PAGE_SIZE")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero page size", func(c *Config) { c.PageSize = 0 }},
		{"unknown city", func(c *Config) { c.Files["boston"] = "boston.csv" }},
		{"unknown ui", func(c *Config) { c.UI = "gui" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCityPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "data"
	cfg.Files["washington"] = "/abs/dc.csv"

	got, err := cfg.CityPath("chicago")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("data", "chicago.csv"); got != want {
		t.Errorf("CityPath(chicago) = %q, want %q", got, want)
	}

	got, err = cfg.CityPath("washington")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/abs/dc.csv" {
		t.Errorf("absolute file should be used as-is, got %q", got)
	}

	if _, err := cfg.CityPath("boston"); err == nil {
		t.Error("expected error for unknown city")
	}
}

func TestCities(t *testing.T) {
	got := Cities()
	want := []string{"chicago", "new york city", "washington"}
	if len(got) != len(want) {
		t.Fatalf("Cities() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cities()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
