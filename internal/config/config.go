package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Minimum terminal size the browser will run at.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Data DataConfig
	Log  LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Colors      bool
	DateFormat  string `mapstructure:"date_format"`
	CommitLimit int    `mapstructure:"commit_limit"`
}

// DataConfig holds synthetic data source settings.
type DataConfig struct {
	Seed    int64
	Commits int
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Path  string
	Debug bool
}

// Load reads configuration from file and env. Env var overrides use prefix TRIPTYCH_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.colors", true)
	v.SetDefault("ui.date_format", "01-02 15:04")
	v.SetDefault("ui.commit_limit", 500)
	v.SetDefault("data.seed", 1)
	v.SetDefault("data.commits", 30)
	v.SetDefault("log.path", "")
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TRIPTYCH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "triptych"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TRIPTYCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// NO_COLOR wins over everything, per the convention.
	if os.Getenv("NO_COLOR") != "" {
		c.UI.Colors = false
	}
	return c, nil
}
