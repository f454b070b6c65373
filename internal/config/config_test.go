//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/books",
			expected: filepath.Join(home, "books"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/books/library/fiction",
			expected: filepath.Join(home, "books", "library", "fiction"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/books",
			expected: "/usr/local/books",
		},
		{
			name:     "relative path unchanged",
			input:    "books/fiction",
			expected: "books/fiction",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := defaults()

	if cfg.Rate != 200 {
		t.Errorf("default rate = %d, want 200", cfg.Rate)
	}
	if cfg.Volume != 1.0 {
		t.Errorf("default volume = %v, want 1.0", cfg.Volume)
	}
	if cfg.MemoryThresholdMB != 100 {
		t.Errorf("default memory_threshold_mb = %d, want 100", cfg.MemoryThresholdMB)
	}
	if cfg.CleanupInterval != 5*time.Minute {
		t.Errorf("default cleanup_interval = %s, want 5m", cfg.CleanupInterval)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log_level = %q, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
input_dir = "/books"
rate = 250
volume = 0.8
voice = "en-gb"
memory_threshold_mb = 50
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.InputDir != "/books" {
		t.Errorf("InputDir = %q, want /books", cfg.InputDir)
	}
	if cfg.Rate != 250 {
		t.Errorf("Rate = %d, want 250", cfg.Rate)
	}
	if cfg.Volume != 0.8 {
		t.Errorf("Volume = %v, want 0.8", cfg.Volume)
	}
	if cfg.Voice != "en-gb" {
		t.Errorf("Voice = %q, want en-gb", cfg.Voice)
	}
	if cfg.MemoryThresholdMB != 50 {
		t.Errorf("MemoryThresholdMB = %d, want 50", cfg.MemoryThresholdMB)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Unset keys keep defaults.
	if cfg.CleanupInterval != 5*time.Minute {
		t.Errorf("CleanupInterval = %s, want default 5m", cfg.CleanupInterval)
	}
	if cfg.PdftotextFallback {
		t.Error("PdftotextFallback should default to false")
	}
}

func TestLoad_PdftotextFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("pdftotext_fallback = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.PdftotextFallback {
		t.Error("PdftotextFallback = false, want true from file")
	}

	// The env variable overrides the file value.
	t.Setenv("LECTERN_PDFTOTEXT_FALLBACK", "false")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PdftotextFallback {
		t.Error("PdftotextFallback = true, want false from env override")
	}

	t.Setenv("LECTERN_PDFTOTEXT_FALLBACK", "maybe")
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a non-boolean LECTERN_PDFTOTEXT_FALLBACK")
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() should fail when the explicit config file is missing")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LECTERN_RATE", "300")
	t.Setenv("LECTERN_VOLUME", "0.25")
	t.Setenv("LECTERN_VOICE", "fr-fr")
	t.Setenv("LECTERN_CLEANUP_INTERVAL", "90s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Rate != 300 {
		t.Errorf("Rate = %d, want 300", cfg.Rate)
	}
	if cfg.Volume != 0.25 {
		t.Errorf("Volume = %v, want 0.25", cfg.Volume)
	}
	if cfg.Voice != "fr-fr" {
		t.Errorf("Voice = %q, want fr-fr", cfg.Voice)
	}
	if cfg.CleanupInterval != 90*time.Second {
		t.Errorf("CleanupInterval = %s, want 90s", cfg.CleanupInterval)
	}
}

func TestLoad_EnvMalformed(t *testing.T) {
	t.Setenv("LECTERN_RATE", "fast")

	if _, err := Load(""); err == nil {
		t.Error("Load() should reject a non-numeric LECTERN_RATE")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"rate too low", func(c *Config) { c.Rate = 79 }, true},
		{"rate too high", func(c *Config) { c.Rate = 501 }, true},
		{"rate at bounds", func(c *Config) { c.Rate = 80 }, false},
		{"volume negative", func(c *Config) { c.Volume = -0.1 }, true},
		{"volume too high", func(c *Config) { c.Volume = 1.1 }, true},
		{"zero threshold", func(c *Config) { c.MemoryThresholdMB = 0 }, true},
		{"zero interval", func(c *Config) { c.CleanupInterval = 0 }, true},
		{"valid timezone", func(c *Config) { c.Timezone = "UTC" }, false},
		{"bogus timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := defaults()
	if cfg.Location() != time.Local {
		t.Error("default Location() should be time.Local")
	}

	cfg.Timezone = "UTC"
	if cfg.Location().String() != "UTC" {
		t.Errorf("Location() = %s, want UTC", cfg.Location())
	}
}
