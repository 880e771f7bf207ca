// Package config reads operator settings for the desktop shell from the
// environment. It never touches the generated application context.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "FUTUREBUDDY"

type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	LogJSON       bool   `mapstructure:"log_json"`
	LogFile       string `mapstructure:"log_file"`
	Debug         bool   `mapstructure:"debug"`
	HandleSignals bool   `mapstructure:"handle_signals"`
}

func Default() Config {
	return Config{
		LogLevel:      "info",
		HandleSignals: true,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_json", def.LogJSON)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("handle_signals", def.HandleSignals)
	return v
}

// Load reads FUTUREBUDDY_* variables over the defaults.
func Load() (Config, error) {
	v := newViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("failed to decode environment: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Level resolves the effective log level. Debug forces debug.
func (c Config) Level() (zerolog.Level, error) {
	if c.Debug {
		return zerolog.DebugLevel, nil
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
