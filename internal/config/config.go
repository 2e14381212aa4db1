// Package config loads metapath settings from defaults, an optional YAML
// file, METAPATH_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/metapath/internal/observability"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/search"
)

// EnvPrefix prefixes every environment variable, e.g. METAPATH_SEARCH_MAX_PATH_LEN.
const EnvPrefix = "METAPATH"

// Config holds all metapath settings.
type Config struct {
	// Search bounds the cost of pathway queries.
	Search SearchConfig `mapstructure:"search"`
	// Logging configures the process logger.
	Logging LoggingConfig `mapstructure:"logging"`
	// Metrics configures the optional metrics dump.
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SearchConfig holds the model and search tuning values.
type SearchConfig struct {
	// MaxSuccessors is the successor count above which a compound is common.
	MaxSuccessors int `mapstructure:"max_successors" validate:"gte=1"`
	// MaxPathLen bounds painting and pathway length.
	MaxPathLen int `mapstructure:"max_path_len" validate:"gte=1"`
	// ProgressInterval is the number of processed pathways between progress logs.
	ProgressInterval int `mapstructure:"progress_interval" validate:"gte=1"`
	// Commons are extra common compounds added to the built-in set.
	Commons []string `mapstructure:"commons" validate:"dive,required"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum level (trace, debug, info, warn, error, disabled).
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled off"`
	// Format is json, console or pretty.
	Format string `mapstructure:"format" validate:"oneof=json console pretty"`
	// Output is stdout or stderr.
	Output string `mapstructure:"output" validate:"oneof=stdout stderr"`
	// AddSource adds file:line to entries.
	AddSource bool `mapstructure:"add_source"`
	// TimeFormat is the timestamp layout.
	TimeFormat string `mapstructure:"time_format"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	// File, when set, receives the search metrics in Prometheus text format.
	File string `mapstructure:"file"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"max-successors": "search.max_successors",
	"max-len":        "search.max_path_len",
	"commons":        "search.commons",
	"log-level":      "logging.level",
	"metrics-file":   "metrics.file",
}

var validate = validator.New()

// Load reads the configuration. path names an explicit YAML file; when
// empty, metapath.yaml is looked up in the working directory and its
// absence is not an error. flags, when non-nil, override every other
// source for the flags the user set.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if present
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("metapath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Search defaults
	v.SetDefault("search.max_successors", model.DefaultMaxSuccessors)
	v.SetDefault("search.max_path_len", model.DefaultMaxPathLen)
	v.SetDefault("search.progress_interval", search.DefaultProgressInterval)
	v.SetDefault("search.commons", []string{})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.add_source", false)
	v.SetDefault("logging.time_format", time.RFC3339)

	// Metrics defaults
	v.SetDefault("metrics.file", "")
}

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// LogConfig converts the logging section for observability.NewLogger.
func (c *Config) LogConfig() observability.LoggingConfig {
	return observability.LoggingConfig{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		Output:     c.Logging.Output,
		AddSource:  c.Logging.AddSource,
		TimeFormat: c.Logging.TimeFormat,
	}
}

// ModelOptions converts the search section into model options.
func (c *Config) ModelOptions() []model.Option {
	opts := []model.Option{
		model.WithMaxSuccessors(c.Search.MaxSuccessors),
		model.WithMaxPathLen(c.Search.MaxPathLen),
	}
	if len(c.Search.Commons) > 0 {
		opts = append(opts, model.WithCommons(c.Search.Commons...))
	}

	return opts
}

// SearchOptions converts the search section into engine options.
func (c *Config) SearchOptions() []search.Option {
	return []search.Option{search.WithProgressInterval(c.Search.ProgressInterval)}
}
