// SPDX-License-Identifier: MIT

// Package config provides configuration for the weir command-line tool.
//
// Config file locations (priority order):
//  1. an explicit path (the -config flag)
//  2. $WEIR_CONFIG
//  3. ./weir.yaml
//
// With no file found, DefaultConfig is used.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "WEIR_CONFIG"
	// ConfigFileName is the default config file name.
	ConfigFileName = "weir.yaml"
	// DefaultStoreDir is the badger directory used when none is configured.
	DefaultStoreDir = "./weir.db"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the tool configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Graph GraphConfig `yaml:"graph"`
	Log   LogConfig   `yaml:"log"`
}

// StoreConfig locates the graph database.
type StoreConfig struct {
	Dir      string `yaml:"dir"`
	InMemory bool   `yaml:"in_memory"`
}

// GraphConfig holds defaults for new graphs.
type GraphConfig struct {
	// Dim is the dimensionality of new graphs: 2 or 3.
	Dim int `yaml:"dim"`
}

// LogConfig sets the klog verbosity.
type LogConfig struct {
	Verbosity int `yaml:"verbosity"`
}

// Load finds and loads the config file, or returns defaults if none is found.
// explicit, when non-empty, must name an existing file.
func Load(explicit string) (*Config, string, error) {
	if explicit != "" {
		return LoadFromPath(explicit)
	}
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, errors.Wrap(err, "parse config")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Dir: DefaultStoreDir},
		Graph: GraphConfig{Dim: 2},
	}
}

// applyDefaults fills in missing values.
func (c *Config) applyDefaults() {
	if c.Store.Dir == "" {
		c.Store.Dir = DefaultStoreDir
	}
	if c.Graph.Dim == 0 {
		c.Graph.Dim = 2
	}
}

// Validate rejects values the tool cannot use.
func (c *Config) Validate() error {
	if c.Graph.Dim != 2 && c.Graph.Dim != 3 {
		return errors.Wrapf(ErrInvalid, "graph.dim must be 2 or 3, got %d", c.Graph.Dim)
	}
	if c.Log.Verbosity < 0 {
		return errors.Wrapf(ErrInvalid, "log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}

// FindConfigPath returns the first existing file among $WEIR_CONFIG and ./weir.yaml,
// or "" when there is none.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
