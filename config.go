package tween

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the settings a Registry can be built from.
type Config struct {
	// InitialCapacity is the number of tweens every new repository reserves.
	InitialCapacity int `mapstructure:"initial_capacity" validate:"gte=0"`
	// TimeScale is applied to schedulers created from this config.
	TimeScale float64 `mapstructure:"time_scale" validate:"gte=0"`
	// DefaultEase names the ease used when a builder sets none.
	DefaultEase string `mapstructure:"default_ease"`
	// Debug enables per-tick logging and invariant checks.
	Debug bool `mapstructure:"debug"`

	Log LogConfig `mapstructure:"log"`

	// MetricsNamespace prefixes the Prometheus metric names.
	MetricsNamespace string `mapstructure:"metrics_namespace" validate:"omitempty,max=64"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		TimeScale:        1,
		DefaultEase:      "Linear",
		Log:              LogConfig{Level: "info", Format: "console", Output: "stderr"},
		MetricsNamespace: "tween",
	}
}

// LoadConfig reads a YAML config file. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("initial_capacity", def.InitialCapacity)
	v.SetDefault("time_scale", def.TimeScale)
	v.SetDefault("default_ease", def.DefaultEase)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.output", def.Log.Output)
	v.SetDefault("metrics_namespace", def.MetricsNamespace)
	v.SetEnvPrefix("TWEEN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and that DefaultEase names a known ease.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.DefaultEase != "" {
		if _, err := EaseByName(c.DefaultEase); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}
