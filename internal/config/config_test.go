package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweeze/endo/internal/session"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const validConfig = `main_nation = "testlandia"
wa_nation = "testlandia_wa"
password = "hunter2"
point = "the_point"
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "testlandia", cfg.MainNation)
	assert.Equal(t, "testlandia_wa", cfg.WANation)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, "the_point", cfg.Point)

	// Defaults
	assert.Equal(t, DefaultBaseURL, cfg.GetBaseURL())
	assert.Equal(t, time.Duration(0), cfg.HTTP.Timeout)
	assert.Equal(t, session.ModePrompt, cfg.Confirm.Mode)
	assert.Equal(t, 6*time.Second, cfg.Confirm.Interval)
}

func TestLoad_OptionalSections(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig+`
[nationstates]
base_url = "http://127.0.0.1:8080"

[http]
timeout = "30s"

[confirm]
mode = "delay"
interval = "10s"

[logging]
level = "debug"
format = "json"
`))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.GetBaseURL())
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, session.ModeDelay, cfg.Confirm.Mode)
	assert.Equal(t, 10*time.Second, cfg.Confirm.Interval)
	assert.Equal(t, "debug", cfg.Logging.Level)

	confirmer, err := cfg.NewConfirmer()
	require.NoError(t, err)
	assert.IsType(t, &session.DelayConfirmer{}, confirmer)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, `main_nation = "testlandia`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		missing  string
	}{
		{
			name:     "no main nation",
			contents: "wa_nation = \"a\"\npassword = \"b\"\npoint = \"c\"\n",
			missing:  "main_nation",
		},
		{
			name:     "no wa nation",
			contents: "main_nation = \"a\"\npassword = \"b\"\npoint = \"c\"\n",
			missing:  "wa_nation",
		},
		{
			name:     "empty password",
			contents: "main_nation = \"a\"\nwa_nation = \"b\"\npassword = \"\"\npoint = \"c\"\n",
			missing:  "password",
		},
		{
			name:     "no point",
			contents: "main_nation = \"a\"\nwa_nation = \"b\"\npassword = \"c\"\n",
			missing:  "point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			require.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENDO_PASSWORD", "from-env")
	t.Setenv("ENDO_POINT", "env_point")

	cfg, err := Load(writeConfig(t, "main_nation = \"a\"\nwa_nation = \"b\"\npassword = \"file\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Password)
	assert.Equal(t, "env_point", cfg.Point)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			MainNation:   "testlandia",
			WANation:     "testlandia_wa",
			Password:     "hunter2",
			Point:        "the_point",
			NationStates: NationStatesConfig{BaseURL: DefaultBaseURL},
			Confirm:      ConfirmConfig{Mode: session.ModePrompt},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad nation name", func(c *Config) { c.Point = "no/slashes" }},
		{"bad base url", func(c *Config) { c.NationStates.BaseURL = "nationstates.net" }},
		{"negative timeout", func(c *Config) { c.HTTP.Timeout = -time.Second }},
		{"unknown confirm mode", func(c *Config) { c.Confirm.Mode = "telepathy" }},
		{"delay without interval", func(c *Config) { c.Confirm.Mode = session.ModeDelay }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidField)
		})
	}
}
