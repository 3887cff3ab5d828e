// Package config loads the CLI settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// Config holds every setting the commands share. Flags override these after
// Load.
type Config struct {
	Roster     string `env:"SHEETS_ROSTER" envDefault:"ficha_personagens.yaml"`
	CatalogDir string `env:"SHEETS_CATALOG_DIR" envDefault:"yaml"`
	OutputDir  string `env:"SHEETS_OUTPUT_DIR" envDefault:"public"`
	ImageDir   string `env:"SHEETS_IMAGE_DIR" envDefault:"img"`
	Title      string `env:"SHEETS_TITLE"`
	LogLevel   string `env:"SHEETS_LOG_LEVEL" envDefault:"info"`

	// RedisAddr switches catalog reads to Redis when set
	RedisAddr string `env:"SHEETS_REDIS_ADDR"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return cfg, nil
}

// Validate ensures the paths every command needs are set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roster == "" {
		vb.RequiredField("Roster")
	}
	if c.CatalogDir == "" && c.RedisAddr == "" {
		vb.Field("CatalogDir", "is required when RedisAddr is empty")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", err.Error())
	}
	return vb.Build()
}

// UseRedis reports whether catalogs come from Redis
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// ParseLogLevel maps debug, info, warn and error to slog levels. Empty means
// info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
}
