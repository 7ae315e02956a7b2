package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ServerConfig points the client at the accountability backend.
type ServerConfig struct {
	// BaseURL is the root URL of the backend REST API.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// PollIntervalSec is how often the polling fallback re-fetches
	// the activity list, independent of the live event stream.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// Theme selects the colour palette: "light" or "dark".
	Theme string `mapstructure:"theme" yaml:"theme"`

	// PageSize is the default activity list page size.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`
}

// NotificationConfig holds desktop notification preferences.
type NotificationConfig struct {
	// Paused suppresses all desktop notifications when true.
	Paused bool `mapstructure:"paused" yaml:"paused"`
}

// AppConfig is the top-level application configuration. It doubles as
// the preference store: theme and the paused flag survive restarts here.
type AppConfig struct {
	Server        ServerConfig       `mapstructure:"server" yaml:"server"`
	Display       DisplayConfig      `mapstructure:"display" yaml:"display"`
	Notifications NotificationConfig `mapstructure:"notifications" yaml:"notifications"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/accountable/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "accountable", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			BaseURL:         "http://127.0.0.1:8000",
			PollIntervalSec: 30,
		},
		Display: DisplayConfig{
			Theme:    "light",
			PageSize: 50,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("server.base_url", "http://127.0.0.1:8000")
	v.SetDefault("server.poll_interval_sec", 30)
	v.SetDefault("display.theme", "light")
	v.SetDefault("display.page_size", 50)
	v.SetDefault("notifications.paused", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.PageSize <= 0 {
		cfg.Display.PageSize = 50
	}
	if cfg.Server.PollIntervalSec <= 0 {
		cfg.Server.PollIntervalSec = 30
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("server", cfg.Server)
	v.Set("display", cfg.Display)
	v.Set("notifications", cfg.Notifications)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
