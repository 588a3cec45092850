// Package config provides hierarchical configuration management for the
// application: built-in defaults, an optional YAML config file, and
// PAYNOTIFY_* environment variables, in ascending precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parser struct {
		// Enabled gates whether notification parsing runs at all. The
		// listener checks this before invoking the orchestrator.
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`

		// RulesFile optionally points at a YAML file overriding the
		// built-in keyword lists and source table.
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`

		// Workers is the size of the worker pool batch parsing runs on.
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"parser" yaml:"parser"`

	Channel struct {
		// Capacity is the per-subscriber buffer of the payment event
		// channel. Overflow drops the oldest buffered event.
		Capacity int `mapstructure:"capacity" yaml:"capacity"`
	} `mapstructure:"channel" yaml:"channel"`

	Ledger struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"ledger" yaml:"ledger"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.paynotify")
	v.AddConfigPath(".paynotify")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PAYNOTIFY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken config file
			// should not take notification parsing down.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("parser.enabled", true)
	v.SetDefault("parser.rules_file", "")
	v.SetDefault("parser.workers", 4)

	v.SetDefault("channel.capacity", 10)

	v.SetDefault("ledger.delimiter", ",")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Parser.Workers < 1 || config.Parser.Workers > 64 {
		return fmt.Errorf("parser.workers must be between 1 and 64, got: %d", config.Parser.Workers)
	}

	if config.Channel.Capacity < 1 || config.Channel.Capacity > 1000 {
		return fmt.Errorf("channel.capacity must be between 1 and 1000, got: %d", config.Channel.Capacity)
	}

	if len(config.Ledger.Delimiter) != 1 {
		return fmt.Errorf("ledger delimiter must be a single character, got: %s", config.Ledger.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
