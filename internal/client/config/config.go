package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the CLI.
type Config struct {
	ServerURL      string        `env:"DK_SERVER_URL"`
	DatabasePath   string        `env:"DK_DATABASE_PATH"`
	RequestTimeout time.Duration `env:"DK_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"DK_LOG_LEVEL"`
}

const (
	DefaultServerURL      = "http://127.0.0.1:8000/api/v1"
	DefaultDatabasePath   = "dungeonkeeper.db"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = DefaultServerURL
	c.DatabasePath = DefaultDatabasePath
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = DefaultLogLevel
}

// Load applies defaults, then the file at path (skipped when empty), then the
// environment. Flags are layered on top by the caller with Flags.Apply.
func Load(path string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		if err := parseFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return errors.New("server url is empty")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("server url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("server url must be absolute: %q", c.ServerURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.DatabasePath == "" {
		return errors.New("database path is empty")
	}
	return nil
}
