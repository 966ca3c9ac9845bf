// Package config loads and validates bikeshare settings.
// Sources, from lowest to highest priority:
//  1. built-in defaults
//  2. the YAML file given by --config (default ~/.config/bikeshare/config.yaml)
//  3. environment variables (BIKESHARE_DATA_DIR, BIKESHARE_UI, BIKESHARE_PAGE_SIZE,
//     LOG_LEVEL, LOG_FILE)
//
// Command-line flags are applied on top by the cmd package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UI modes.
const (
	UIPlain = "plain"
	UITUI   = "tui"
	UIAuto  = "auto"
)

// DefaultCityFiles maps every supported city to its dataset file name.
var DefaultCityFiles = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

// LogConfig controls the diagnostic logger. Report output never goes through it.
type LogConfig struct {
	// Level: debug | info | warn | error
	Level string `yaml:"level"`

	// File receives log lines; empty means stderr.
	File string `yaml:"file"`
}

// Config is the complete bikeshare configuration.
type Config struct {
	// DataDir is the directory holding the city CSV files.
	DataDir string `yaml:"data_dir"`

	// Files overrides the dataset file name per city. Keys must be supported cities.
	Files map[string]string `yaml:"files"`

	// PageSize is the number of raw rows shown per pager batch.
	PageSize int `yaml:"page_size"`

	// UI: plain (default) | tui | auto
	UI string `yaml:"ui"`

	Log LogConfig `yaml:"log"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	files := make(map[string]string, len(DefaultCityFiles))
	for city, file := range DefaultCityFiles {
		files[city] = file
	}
	return &Config{
		DataDir:  ".",
		Files:    files,
		PageSize: 5,
		UI:       UIPlain,
		Log: LogConfig{
			Level: "error",
		},
	}
}

// DefaultPath returns ~/.config/bikeshare/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bikeshare", "config.yaml")
}

// Load reads the config file (a missing file is not an error), applies
// environment overrides and validates the result.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = DefaultPath()
	}

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			var fileCfg Config
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
			}
			cfg.merge(&fileCfg)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every non-zero field of other onto c. City files merge per key
// so a file may override a single city.
func (c *Config) merge(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	for city, file := range other.Files {
		c.Files[city] = file
	}
	if other.PageSize != 0 {
		c.PageSize = other.PageSize
	}
	if other.UI != "" {
		c.UI = other.UI
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
}

// Validate rejects settings the rest of the program cannot honour.
func (c *Config) Validate() error {
	for city := range c.Files {
		if _, ok := DefaultCityFiles[city]; !ok {
			return fmt.Errorf("config: unsupported city %q in files (supported: %s)",
				city, strings.Join(Cities(), ", "))
		}
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("config: page_size must be positive, got %d", c.PageSize)
	}
	switch c.UI {
	case UIPlain, UITUI, UIAuto:
	default:
		return fmt.Errorf("config: ui must be %q, %q or %q, got %q", UIPlain, UITUI, UIAuto, c.UI)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// CityPath returns the dataset path for city.
func (c *Config) CityPath(city string) (string, error) {
	file, ok := c.Files[city]
	if !ok {
		return "", fmt.Errorf("no dataset configured for city %q", city)
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(c.DataDir, file), nil
}

// Cities returns the supported city names in sorted order.
func Cities() []string {
	names := make([]string, 0, len(DefaultCityFiles))
	for city := range DefaultCityFiles {
		names = append(names, city)
	}
	sort.Strings(names)
	return names
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("BIKESHARE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("BIKESHARE_UI"); v != "" {
		cfg.UI = strings.ToLower(v)
	}
	if v := os.Getenv("BIKESHARE_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: parse BIKESHARE_PAGE_SIZE: %w", err)
		}
		cfg.PageSize = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}
