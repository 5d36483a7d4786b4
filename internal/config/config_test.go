package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/crispyBCN13/LifeLog/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvDB, config.EnvLogLevel, config.EnvFormat, config.EnvMultiplier} {
		t.Setenv(k, "")
	}
	// Keep the user's real config out of the way.
	t.Setenv(config.EnvConfig, "")
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	gt.NoError(t, err)
	gt.Equal(t, cfg.Format, "json")
	gt.Equal(t, cfg.LogLevel, "warn")
	gt.Equal(t, cfg.Multiplier, 1.0)
	gt.True(t, strings.HasSuffix(cfg.DB, filepath.Join(".lifelog", "lifelog.db")))
	gt.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "db: /tmp/from-file.db\nformat: text\nmultiplier: 1.5\n")

	cfg, err := config.Load(path)
	gt.NoError(t, err)
	gt.Equal(t, cfg.DB, "/tmp/from-file.db")
	gt.Equal(t, cfg.Format, "text")
	gt.Equal(t, cfg.Multiplier, 1.5)
	gt.Equal(t, cfg.LogLevel, "warn")

	t.Setenv(config.EnvDB, "/tmp/from-env.db")
	t.Setenv(config.EnvMultiplier, "2")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err = config.Load(path)
	gt.NoError(t, err)
	gt.Equal(t, cfg.DB, "/tmp/from-env.db")
	gt.Equal(t, cfg.Multiplier, 2.0)
	gt.Equal(t, cfg.LogLevel, "debug")
	gt.Equal(t, cfg.Format, "text")
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvConfig, writeFile(t, "log_level: error\n"))

	cfg, err := config.Load("")
	gt.NoError(t, err)
	gt.Equal(t, cfg.LogLevel, "error")
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	gt.Error(t, err)

	_, err = config.Load(writeFile(t, "db: [unclosed\n"))
	gt.Error(t, err)

	t.Setenv(config.EnvMultiplier, "lots")
	_, err = config.Load("")
	gt.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"valid", func(c *config.Config) {}, ""},
		{"upper-case level", func(c *config.Config) { c.LogLevel = "DEBUG" }, ""},
		{"bad format", func(c *config.Config) { c.Format = "yaml" }, "invalid format 'yaml'"},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }, "invalid log level 'loud'"},
		{"empty db", func(c *config.Config) { c.DB = "" }, "database path cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err)
			gt.S(t, err.Error()).Contains(tt.wantErr)
		})
	}
}
