package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Rate bounds in words per minute.
const (
	minRate = 80
	maxRate = 500
)

type Config struct {
	InputDir  string `koanf:"input_dir"`  // starting directory for the file browser (empty means cwd)
	OutputDir string `koanf:"output_dir"` // directory for synthesized utterance WAVs

	// Speech defaults applied at startup
	Voice  string  `koanf:"voice"`  // synthesizer voice ID (empty means default)
	Rate   int     `koanf:"rate"`   // words per minute (80-500, default: 200)
	Volume float64 `koanf:"volume"` // 0.0-1.0 (default: 1.0)
	Engine string  `koanf:"engine"` // synthesizer binary override (empty means autodetect)

	// Extraction
	PdftotextFallback bool `koanf:"pdftotext_fallback"` // retry failed extractions with the pdftotext binary

	// Utterance cache janitor
	MemoryThresholdMB int           `koanf:"memory_threshold_mb"` // cache size before sweeping (default: 100)
	CleanupInterval   time.Duration `koanf:"cleanup_interval"`    // sweep interval (default: 5m)

	// Logging
	LogLevel string `koanf:"log_level"` // zap level name (default: "info")
	LogFile  string `koanf:"log_file"`  // empty disables file logging
	Timezone string `koanf:"timezone"`  // IANA zone for log timestamps (default: "Local")
}

// Load reads configuration from TOML files and environment variables.
// Files load in priority order (last wins): the XDG config file, then
// ./config.toml, then explicitPath when given. Environment variables with
// the LECTERN_ prefix override file values; a .env file loaded by the
// caller feeds them the same way.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths(explicitPath) {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		} else if path == explicitPath {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg := defaults()

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.InputDir = expandPath(cfg.InputDir)
	cfg.OutputDir = expandPath(cfg.OutputDir)
	cfg.LogFile = expandPath(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Rate:              200,
		Volume:            1.0,
		OutputDir:         filepath.Join(xdg.CacheHome, "lectern", "utterances"),
		MemoryThresholdMB: 100,
		CleanupInterval:   5 * time.Minute,
		LogLevel:          "info",
		Timezone:          "Local",
	}
}

func configPaths(explicitPath string) []string {
	paths := []string{
		filepath.Join(xdg.ConfigHome, "lectern", "config.toml"),
		"config.toml",
	}
	if explicitPath != "" {
		paths = append(paths, explicitPath)
	}
	return paths
}

// applyEnv overrides file values with LECTERN_* environment variables.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("LECTERN_INPUT_DIR"); ok {
		cfg.InputDir = v
	}
	if v, ok := os.LookupEnv("LECTERN_OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := os.LookupEnv("LECTERN_VOICE"); ok {
		cfg.Voice = v
	}
	if v, ok := os.LookupEnv("LECTERN_ENGINE"); ok {
		cfg.Engine = v
	}
	if v, ok := os.LookupEnv("LECTERN_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("LECTERN_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv("LECTERN_TIMEZONE"); ok {
		cfg.Timezone = v
	}
	if v, ok := os.LookupEnv("LECTERN_RATE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LECTERN_RATE: %w", err)
		}
		cfg.Rate = n
	}
	if v, ok := os.LookupEnv("LECTERN_PDFTOTEXT_FALLBACK"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LECTERN_PDFTOTEXT_FALLBACK: %w", err)
		}
		cfg.PdftotextFallback = b
	}
	if v, ok := os.LookupEnv("LECTERN_VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LECTERN_VOLUME: %w", err)
		}
		cfg.Volume = f
	}
	if v, ok := os.LookupEnv("LECTERN_MEMORY_THRESHOLD_MB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LECTERN_MEMORY_THRESHOLD_MB: %w", err)
		}
		cfg.MemoryThresholdMB = n
	}
	if v, ok := os.LookupEnv("LECTERN_CLEANUP_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LECTERN_CLEANUP_INTERVAL: %w", err)
		}
		cfg.CleanupInterval = d
	}
	return nil
}

// Validate checks ranges and formats. Called by Load; exported so tests and
// tools can check hand-built configs.
func (c *Config) Validate() error {
	if c.Rate < minRate || c.Rate > maxRate {
		return fmt.Errorf("rate %d out of range (%d-%d)", c.Rate, minRate, maxRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range (0.0-1.0)", c.Volume)
	}
	if c.MemoryThresholdMB <= 0 {
		return fmt.Errorf("memory_threshold_mb must be positive, got %d", c.MemoryThresholdMB)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be positive, got %s", c.CleanupInterval)
	}
	if c.Timezone != "" && c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone %q: %w", c.Timezone, err)
		}
	}
	return nil
}

// Location resolves the configured timezone for log timestamps.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
