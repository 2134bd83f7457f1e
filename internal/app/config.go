package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Storage backend names accepted in Config.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "PASSKEEP_"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string        `yaml:"home"       env:"HOME"`       // data directory, e.g. $HOME/.passkeep
	Backend   string        `yaml:"backend"    env:"BACKEND"`    // "file" or "sqlite"
	IOTimeout time.Duration `yaml:"io_timeout" env:"IO_TIMEOUT"` // bound on each storage call
	LogLevel  string        `yaml:"log_level"  env:"LOG_LEVEL"`
	LogPretty bool          `yaml:"log_pretty" env:"LOG_PRETTY"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	home := ".passkeep"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".passkeep")
	}
	return Config{
		Home:      home,
		Backend:   BackendFile,
		IOTimeout: 5 * time.Second,
		LogLevel:  "warn",
	}
}

// LoadConfig layers the defaults, the YAML file at path and PASSKEEP_*
// environment variables, in that order. An empty path falls back to
// PASSKEEP_CONFIG; when both are empty no file is read.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("config: home is empty")
	}
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown backend %q (want %q or %q)", c.Backend, BackendFile, BackendSQLite)
	}
	if c.IOTimeout <= 0 {
		return fmt.Errorf("config: io_timeout must be positive, got %s", c.IOTimeout)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}
