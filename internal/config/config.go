// Package config loads and persists prodview configuration.
// The config file lives at <workspace>/.prodview/config.yaml; a missing file
// means defaults. Environment variables override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"prodview/internal/logging"
)

// Config holds all prodview configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig configures the remote catalog endpoint.
type SourceConfig struct {
	Endpoint string `yaml:"endpoint"`
	Limit    int    `yaml:"limit"` // page size requested from the source
}

// UIConfig configures the interactive browser.
type UIConfig struct {
	PageSize int    `yaml:"page_size"`
	Theme    string `yaml:"theme"` // "light" or "dark", empty = auto-detect
}

// LoggingConfig mirrors logging.Settings in the config file.
type LoggingConfig struct {
	Debug      bool            `yaml:"debug"`
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Endpoint: "https://dummyjson.com/products",
			Limit:    100,
		},
		UI: UIConfig{
			PageSize: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the config directory for the given workspace.
func Dir(workspace string) string {
	return filepath.Join(workspace, ".prodview")
}

// File returns the full path of the config file.
func File(workspace string) string {
	return filepath.Join(Dir(workspace), "config.yaml")
}

// Load reads the config file, fills in defaults for anything unset, and
// applies environment overrides. A missing file is not an error.
func Load(workspace string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(File(workspace))
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config: %w", err)
		}
		cfg.fillDefaults()
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(workspace string, cfg Config) error {
	if err := os.MkdirAll(Dir(workspace), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(File(workspace), data, 0644)
}

// LoggingSettings converts the config block into the logging package's form.
func (c Config) LoggingSettings() logging.Settings {
	return logging.Settings{
		Debug:      c.Logging.Debug,
		Level:      c.Logging.Level,
		Categories: c.Logging.Categories,
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Source.Endpoint == "" {
		c.Source.Endpoint = def.Source.Endpoint
	}
	if c.Source.Limit <= 0 {
		c.Source.Limit = def.Source.Limit
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = def.UI.PageSize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PRODVIEW_ENDPOINT"); v != "" {
		c.Source.Endpoint = v
	}
	if v := os.Getenv("PRODVIEW_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("PRODVIEW_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.UI.PageSize = n
		}
	}
	if v := os.Getenv("PRODVIEW_DEBUG"); v == "1" || v == "true" {
		c.Logging.Debug = true
	}
}
