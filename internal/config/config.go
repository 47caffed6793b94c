// Package config provides configuration loading and validation for the
// prefixdfa command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/milden6/prefixdfa"
	"github.com/milden6/prefixdfa/wordlist"
)

// Sentinel validation errors.
var (
	ErrInvalidVariant = errors.New("invalid automaton variant")
	ErrInvalidLevel   = errors.New("invalid log level")
)

// Automaton variants.
const (
	VariantBasic  = "basic"
	VariantMemory = "memory"
)

const (
	configName = ".prefixdfa"
	configType = "yaml"
	envPrefix  = "PREFIXDFA"
)

// Config holds all configuration for the prefixdfa command.
type Config struct {
	Automaton AutomatonConfig `mapstructure:"automaton"`
	Wordlist  WordlistConfig  `mapstructure:"wordlist"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// AutomatonConfig selects the automaton implementation.
type AutomatonConfig struct {
	Variant string `mapstructure:"variant"`
}

// WordlistConfig controls how word lists are normalized before insertion.
type WordlistConfig struct {
	Strip         string `mapstructure:"strip"`
	Lowercase     bool   `mapstructure:"lowercase"`
	RequireLetter bool   `mapstructure:"require_letter"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	defaults := wordlist.DefaultOptions()

	viperCfg.SetDefault("automaton.variant", VariantBasic)
	viperCfg.SetDefault("wordlist.lowercase", defaults.Lowercase)
	viperCfg.SetDefault("wordlist.strip", defaults.Strip)
	viperCfg.SetDefault("wordlist.require_letter", defaults.RequireLetter)
	viperCfg.SetDefault("logging.level", "info")
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Automaton.Variant {
	case VariantBasic, VariantMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidVariant, c.Automaton.Variant)
	}

	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// NewSet returns an empty automaton of the configured variant.
func (c AutomatonConfig) NewSet() prefixdfa.Set {
	if c.Variant == VariantMemory {
		return prefixdfa.NewMem()
	}
	return prefixdfa.New()
}

// Options converts the configuration into word list options.
func (c WordlistConfig) Options() wordlist.Options {
	return wordlist.Options{
		Lowercase:     c.Lowercase,
		Strip:         c.Strip,
		RequireLetter: c.RequireLetter,
	}
}

// SlogLevel parses the configured level name.
func (c LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
	}
	return level, nil
}
