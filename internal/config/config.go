package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Corner      string
	ShowOnStart bool `mapstructure:"show_on_start"`
	Timezone    string
}

// LogConfig holds log sink settings. Logs go to a file because the
// terminal belongs to the TUI.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix CLOCKPANEL_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.corner", "top-right")
	v.SetDefault("ui.show_on_start", true)
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "clockpanel", "clockpanel.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CLOCKPANEL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "clockpanel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOCKPANEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("CLOCKPANEL_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "clockpanel", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.corner", cfg.UI.Corner)
	v.Set("ui.show_on_start", cfg.UI.ShowOnStart)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
