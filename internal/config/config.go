package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Input data files
	Data DataConfig `yaml:"data"`

	// Statement rendering settings
	Statement StatementConfig `yaml:"statement"`

	// Logging settings
	Log LogConfig `yaml:"log"`
}

type DataConfig struct {
	PlaysPath    string `yaml:"plays_path"`    // Play catalog (JSON or YAML)
	InvoicesPath string `yaml:"invoices_path"` // Invoice list (JSON or YAML)
}

type StatementConfig struct {
	Language       string `yaml:"language"`        // Label language: "ko" or "en"
	CurrencySymbol string `yaml:"currency_symbol"` // Prefix for amounts (e.g., "$")
	Locale         string `yaml:"locale"`          // BCP 47 tag used for digit grouping (e.g., "en-US")
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfigPath returns ~/.config/playbill/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "playbill", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "playbill", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			PlaysPath:    "plays.json",
			InvoicesPath: "invoices.json",
		},
		Statement: StatementConfig{
			Language:       "ko",
			CurrencySymbol: "$",
			Locale:         "en-US",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal returns the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate returns an error if the config is invalid
func (c *Config) Validate() error {
	switch c.Statement.Language {
	case "ko", "en":
	default:
		return fmt.Errorf("statement language must be ko or en, got %q", c.Statement.Language)
	}
	if _, err := c.LocaleTag(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Data.PlaysPath == "" {
		return errors.New("data.plays_path is required")
	}
	if c.Data.InvoicesPath == "" {
		return errors.New("data.invoices_path is required")
	}
	return nil
}

// LocaleTag parses the configured locale
func (c *Config) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(c.Statement.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Statement.Locale, err)
	}
	return tag, nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InvalidLevel, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
