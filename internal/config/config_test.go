package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/config"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	for _, key := range []string{
		"SHEETS_ROSTER", "SHEETS_CATALOG_DIR", "SHEETS_OUTPUT_DIR",
		"SHEETS_IMAGE_DIR", "SHEETS_TITLE", "SHEETS_LOG_LEVEL", "SHEETS_REDIS_ADDR",
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(&config.Config{
		Roster:     "ficha_personagens.yaml",
		CatalogDir: "yaml",
		OutputDir:  "public",
		ImageDir:   "img",
		LogLevel:   "info",
	}, cfg)
	s.False(cfg.UseRedis())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoadFromEnv() {
	s.T().Setenv("SHEETS_ROSTER", "mesa/fichas.yaml")
	s.T().Setenv("SHEETS_CATALOG_DIR", "mesa/yaml")
	s.T().Setenv("SHEETS_OUTPUT_DIR", "dist")
	s.T().Setenv("SHEETS_IMAGE_DIR", "tokens")
	s.T().Setenv("SHEETS_TITLE", "Mesa de Sábado")
	s.T().Setenv("SHEETS_LOG_LEVEL", "debug")
	s.T().Setenv("SHEETS_REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(&config.Config{
		Roster:     "mesa/fichas.yaml",
		CatalogDir: "mesa/yaml",
		OutputDir:  "dist",
		ImageDir:   "tokens",
		Title:      "Mesa de Sábado",
		LogLevel:   "debug",
		RedisAddr:  "localhost:6379",
	}, cfg)
	s.True(cfg.UseRedis())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name: "valid file config",
			cfg:  config.Config{Roster: "r.yaml", CatalogDir: "yaml"},
		},
		{
			name: "redis without catalog dir",
			cfg:  config.Config{Roster: "r.yaml", RedisAddr: "localhost:6379"},
		},
		{
			name:    "missing roster",
			cfg:     config.Config{CatalogDir: "yaml"},
			wantErr: "Roster: is required",
		},
		{
			name:    "no catalog source",
			cfg:     config.Config{Roster: "r.yaml"},
			wantErr: "CatalogDir: is required when RedisAddr is empty",
		},
		{
			name:    "bad log level",
			cfg:     config.Config{Roster: "r.yaml", CatalogDir: "yaml", LogLevel: "loud"},
			wantErr: "LogLevel:",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *ConfigTestSuite) TestParseLogLevel() {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{input: "", expected: slog.LevelInfo},
		{input: "DEBUG", expected: slog.LevelDebug},
		{input: "warning", expected: slog.LevelWarn},
		{input: " error ", expected: slog.LevelError},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			level, err := config.ParseLogLevel(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, level)
		})
	}

	_, err := config.ParseLogLevel("loud")
	s.True(errors.IsInvalidArgument(err))
}
