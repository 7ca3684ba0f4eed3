package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags are the command-line overrides. Register them on a flag set, parse,
// then Apply to a loaded Config.
type Flags struct {
	ConfigPath     string
	ServerURL      string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
}

func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to a YAML or JSON config file")
	fs.StringVarP(&f.ServerURL, "server", "a", DefaultServerURL, "backend API base URL")
	fs.StringVar(&f.DatabasePath, "db", DefaultDatabasePath, "local database file")
	fs.DurationVar(&f.RequestTimeout, "timeout", DefaultRequestTimeout, "per-request timeout")
	fs.StringVar(&f.LogLevel, "log-level", DefaultLogLevel, "debug, info, warn or error")
}

// Apply copies only the flags the user actually set.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("server") {
		cfg.ServerURL = f.ServerURL
	}
	if fs.Changed("db") {
		cfg.DatabasePath = f.DatabasePath
	}
	if fs.Changed("timeout") {
		cfg.RequestTimeout = f.RequestTimeout
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
}
