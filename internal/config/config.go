// Package config loads CLI configuration from a TOML file and TNQECC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/born-ml/tnqecc/internal/network"
)

// EnvConfigPath names the environment variable holding an explicit config file.
const EnvConfigPath = "TNQECC_CONFIG"

// Config holds application configuration.
type Config struct {
	Contract ContractConfig
	Log      LogConfig
	Render   RenderConfig
}

// ContractConfig holds full-contraction settings.
type ContractConfig struct {
	Optimizer string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
}

// RenderConfig holds drawing settings.
type RenderConfig struct {
	Format    string
	ShowTags  bool `mapstructure:"show_tags"`
	ShowInds  bool `mapstructure:"show_inds"`
	Legend    bool
	Layout    string
	FigWidth  float64 `mapstructure:"fig_width"`
	FigHeight float64 `mapstructure:"fig_height"`
	Colors    map[string]string
}

// Load reads configuration from file and env. Env var overrides use prefix TNQECC_.
//
// The file is path if given, else $TNQECC_CONFIG, else config.toml in the
// user config directory. An explicit file must exist; the default one is
// optional.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("contract.optimizer", string(network.OptimizeGreedy))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 1)
	v.SetDefault("log.max_backups", 2)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("render.format", "text")
	v.SetDefault("render.show_tags", true)
	v.SetDefault("render.show_inds", true)
	v.SetDefault("render.legend", true)
	v.SetDefault("render.layout", "neato")
	v.SetDefault("render.fig_width", 0.0)
	v.SetDefault("render.fig_height", 0.0)
	v.SetDefault("render.colors", map[string]string{})

	v.SetConfigType("toml")

	explicit := path
	if explicit == "" {
		explicit = os.Getenv(EnvConfigPath)
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tnqecc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TNQECC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	if _, err := network.ParseOptimizer(c.Contract.Optimizer); err != nil {
		return fmt.Errorf("contract.optimizer: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log: rotation limits must not be negative")
	}
	switch c.Render.Format {
	case "text", "dot":
	default:
		return fmt.Errorf("render.format: unknown format %q (want text or dot)", c.Render.Format)
	}
	if c.Render.FigWidth < 0 || c.Render.FigHeight < 0 {
		return errors.New("render: figure size must not be negative")
	}
	return nil
}

// ParseLevel converts a level name (debug, info, warn, error) into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return l, nil
}
