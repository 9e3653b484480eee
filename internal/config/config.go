// Package config loads planner settings.
//
// Precedence (lowest first): built-in defaults, the YAML config file, then
// environment variables. Command-line flags are applied by the caller.
//
// Config file locations (priority order):
//  1. $COURSEPLANNER_CONFIG
//  2. ./courseplanner.yaml
//  3. ~/.config/courseplanner/config.yaml
//
// The first location is explicit: when $COURSEPLANNER_CONFIG names a file
// that does not exist, Load fails instead of falling back to the others.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"courseplanner/internal/ctxlog"
)

const (
	DefaultCatalogPath = "courses.csv"
	DefaultLogLevel    = "info"

	EnvConfig   = "COURSEPLANNER_CONFIG"
	EnvCatalog  = "COURSEPLANNER_CATALOG"
	EnvLogLevel = "COURSEPLANNER_LOG_LEVEL"
	EnvEditor   = "COURSEPLANNER_EDITOR"
)

// Config holds planner settings
type Config struct {
	CatalogPath string `yaml:"catalog_path"`
	LogLevel    string `yaml:"log_level"`
	// Editor overrides $EDITOR for the TUI edit action
	Editor string `yaml:"editor"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		CatalogPath: DefaultCatalogPath,
		LogLevel:    DefaultLogLevel,
	}
}

// Load finds the config file (if any), applies env overrides and validates.
// It returns the path of the file used, or "" when defaults were used.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if env := os.Getenv(EnvConfig); env != "" {
		if _, err := os.Stat(env); err != nil {
			return nil, env, fmt.Errorf("config file from $%s: %w", EnvConfig, err)
		}
	}

	cfg := DefaultConfig()
	if path != "" {
		loaded, err := LoadFromPath(path)
		if err != nil {
			return nil, path, err
		}
		cfg = loaded
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FindConfigPath returns the first existing config file, or ""
func FindConfigPath() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}

	candidates := []string{"courseplanner.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "courseplanner", "config.yaml"))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks field values
func (c *Config) Validate() error {
	var errs []error
	if c.CatalogPath == "" {
		errs = append(errs, errors.New("catalog_path must not be empty"))
	}
	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Config) applyDefaults() {
	if c.CatalogPath == "" {
		c.CatalogPath = DefaultCatalogPath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) applyEnv() {
	if env := os.Getenv(EnvCatalog); env != "" {
		c.CatalogPath = env
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		c.LogLevel = env
	}
	if env := os.Getenv(EnvEditor); env != "" {
		c.Editor = env
	}
}
