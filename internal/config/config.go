package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GOSHAFT_SEARCH_STEP
const EnvPrefix = "GOSHAFT"

// Config holds all application configuration.
type Config struct {
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// SearchConfig holds the diameter scan range (mm).
type SearchConfig struct {
	MinDiameter float64 `mapstructure:"min_diameter"`
	MaxDiameter float64 `mapstructure:"max_diameter"`
	Step        float64 `mapstructure:"step"`
}

// Range converts the search configuration into a validated scan range.
func (c SearchConfig) Range() (shaft.SearchRange, error) {
	r := shaft.SearchRange{Min: c.MinDiameter, Max: c.MaxDiameter, Step: c.Step}
	if err := r.Validate(); err != nil {
		return shaft.SearchRange{}, fmt.Errorf("invalid search config: %w", err)
	}
	return r, nil
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional .env file, an
// optional config file and GOSHAFT_* environment variables, in increasing
// order of precedence.
func Load(configPath string) (*Config, error) {
	// A missing .env is fine; anything else is reported.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("search.min_diameter", shaft.DefaultRange.Min)
	v.SetDefault("search.max_diameter", shaft.DefaultRange.Max)
	v.SetDefault("search.step", shaft.DefaultRange.Step)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
