// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appName names the config directory.
const appName = "omni-select"

// Config represents the application configuration.
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Theme ThemeConfig `yaml:"theme"`
	Log   LogConfig   `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode        bool   `yaml:"vim_mode"`
	Placement      string `yaml:"placement,omitempty"` // "overlay" or "inline"
	MaxVisible     int    `yaml:"max_visible,omitempty"`
	Width          int    `yaml:"width,omitempty"`
	NotifyOnSelect bool   `yaml:"notify_on_select"`
}

// ThemeConfig overrides the accent colors. Empty values keep the defaults.
type ThemeConfig struct {
	Highlight string `yaml:"highlight,omitempty"`
	Subtle    string `yaml:"subtle,omitempty"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:    true,
			Placement:  "overlay",
			MaxVisible: 8,
			Width:      36,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
// XDG_CONFIG_HOME is honored when set.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(base, appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path.
func SaveFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.UI.Placement {
	case "", "overlay", "inline":
	default:
		return fmt.Errorf("invalid ui.placement %q: want overlay or inline", c.UI.Placement)
	}
	if c.UI.MaxVisible < 0 {
		return fmt.Errorf("invalid ui.max_visible %d: must not be negative", c.UI.MaxVisible)
	}
	if c.UI.Width < 0 {
		return fmt.Errorf("invalid ui.width %d: must not be negative", c.UI.Width)
	}
	return nil
}

// LogPath returns the debug log location, defaulting to the config directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}
