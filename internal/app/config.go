package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"contactbook/internal/session"
	"contactbook/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	PageSize  int                     `yaml:"page_size"`  // records per `show page`
	BlankLine session.BlankLinePolicy `yaml:"blank_line"` // ignore | exit
	Prompt    string                  `yaml:"prompt"`
	Color     bool                    `yaml:"color"`
	Logging   LoggingConfig           `yaml:"logging"`

	// Now supplies "today"; defaults to time.Now.
	Now func() time.Time `yaml:"-"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // empty means stderr
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		PageSize:  store.DefaultPageSize,
		BlankLine: session.BlankLineIgnore,
		Prompt:    "> ",
		Color:     true,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Now: time.Now,
	}
}

// LoadConfig reads a YAML config over the defaults. An empty path or a
// missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a YAML file can get wrong.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if _, err := session.ParseBlankLinePolicy(string(c.BlankLine)); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
