// Package config loads and saves the sget YAML configuration from
// the user's config directory (~/.config/sget/config.yml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yml"

// Twitter holds platform-specific auth passed through to the upstream
// extraction API for age-restricted content
type Twitter struct {
	AuthToken string `yaml:"auth_token,omitempty"`
}

// Config is the persisted sget configuration
type Config struct {
	// Listen is the address the API server binds to
	Listen string `yaml:"listen"`

	// APIBase is the upstream extraction service base URL
	APIBase string `yaml:"api_base"`

	// TimeoutSeconds bounds each upstream call wall-clock time
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Retries is how many times transient upstream failures are retried
	Retries int `yaml:"retries"`

	// UserAgent is sent on every upstream request
	UserAgent string `yaml:"user_agent"`

	// BrowserFallback enables headless-browser sniffing when the
	// upstream API yields nothing
	BrowserFallback bool `yaml:"browser_fallback"`

	Twitter Twitter `yaml:"twitter,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Listen:         ":8080",
		APIBase:        "https://downloader.ovrica.name.ng",
		TimeoutSeconds: 30,
		Retries:        2,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	}
}

// ConfigDir returns the directory holding the config file.
// SGET_CONFIG_DIR overrides it, mainly for tests and containers.
func ConfigDir() (string, error) {
	if dir := os.Getenv("SGET_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, "sget"), nil
}

// SavePath returns the full path of the config file
func SavePath() string {
	dir, err := ConfigDir()
	if err != nil {
		return configFile
	}
	return filepath.Join(dir, configFile)
}

// Exists reports whether a config file has been written
func Exists() bool {
	_, err := os.Stat(SavePath())
	return err == nil
}

// Load reads the config file, applying defaults for missing fields
func Load() (*Config, error) {
	data, err := os.ReadFile(SavePath())
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads the config file, falling back to defaults when
// it is missing or unreadable
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config file, creating the directory if needed
func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
