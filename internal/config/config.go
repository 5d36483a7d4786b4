// Package config loads lifelog settings from defaults, an optional .env
// file, an optional YAML file and LIFELOG_* environment variables, in that
// order of increasing precedence. Command-line flags are applied on top by
// the cli package.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const (
	EnvDB         = "LIFELOG_DB"
	EnvLogLevel   = "LIFELOG_LOG_LEVEL"
	EnvFormat     = "LIFELOG_FORMAT"
	EnvMultiplier = "LIFELOG_MULTIPLIER"
	EnvConfig     = "LIFELOG_CONFIG"
)

var (
	validFormats   = []string{"json", "text"}
	validLogLevels = []string{"debug", "info", "warn", "warning", "error"}
)

type Config struct {
	DB         string  `yaml:"db"`
	LogLevel   string  `yaml:"log_level"`
	Format     string  `yaml:"format"`
	Multiplier float64 `yaml:"multiplier"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DB:         filepath.Join(homeDir(), "lifelog.db"),
		LogLevel:   "warn",
		Format:     "json",
		Multiplier: 1,
	}
}

// DefaultPath is where Load looks for a config file when none is given.
func DefaultPath() string {
	return filepath.Join(homeDir(), "config.yaml")
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lifelog")
}

// LoadEnvFile loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load builds the configuration. An explicit path must exist; the default
// path is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}

	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvDB); v != "" {
		c.DB = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvMultiplier); v != "" {
		m, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return goerr.Wrap(err, "invalid multiplier", goerr.V(EnvMultiplier, v))
		}
		c.Multiplier = m
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.DB == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if !contains(validFormats, c.Format) {
		problems = append(problems, "invalid format '"+c.Format+"': must be one of json, text")
	}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		problems = append(problems, "invalid log level '"+c.LogLevel+"': must be one of debug, info, warn, error")
	}

	if len(problems) > 0 {
		return goerr.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
