// Package config provides Viper-based configuration loading for the cavern console game.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is where log lines go: "stderr", "stdout", or a file path.
	Output string `mapstructure:"output"`
}

// GameConfig holds game presentation settings.
type GameConfig struct {
	// Locale selects the language of messages and room text: "zh" or "en".
	Locale string `mapstructure:"locale"`
	// PlayerName, when set, skips the startup name prompt.
	PlayerName string `mapstructure:"player_name"`
}

// ConsoleConfig holds terminal rendering settings.
type ConsoleConfig struct {
	// Color enables ANSI color in room rendering.
	Color bool `mapstructure:"color"`
	// Width wraps descriptions at this many columns; 0 disables wrapping.
	Width int `mapstructure:"width"`
	// Prompt is written before every command read.
	Prompt string `mapstructure:"prompt"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateConsole(c.Console); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	validLocales := map[string]bool{"zh": true, "en": true}
	if !validLocales[g.Locale] {
		return fmt.Errorf("game.locale must be one of [zh, en], got %q", g.Locale)
	}
	return nil
}

func validateConsole(c ConsoleConfig) error {
	if c.Width < 0 {
		return fmt.Errorf("console.width must be >= 0, got %d", c.Width)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with CAVERN_ prefix
	v.SetEnvPrefix("CAVERN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadDotEnv copies KEY=value pairs from a dotenv file into the process
// environment so CAVERN_* overrides can live next to the binary. Variables
// already set in the environment win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %q: %w", path, err)
	}
	return nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("game.locale", "zh")
	v.SetDefault("game.player_name", "")

	v.SetDefault("console.color", true)
	v.SetDefault("console.width", 78)
	v.SetDefault("console.prompt", "> ")
}
