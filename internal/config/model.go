package config

import (
	"time"

	"github.com/sweeze/endo/internal/session"
)

// Config represents the application configuration structure
type Config struct {

	// Nation the tool is being run for. Shown in the User-Agent.
	MainNation string `mapstructure:"main_nation"`

	// Nation whose credentials log in and cast the endorsements
	WANation string `mapstructure:"wa_nation"`
	Password string `mapstructure:"password"`

	// Nation whose endorsers make up the target list
	Point string `mapstructure:"point"`

	NationStates NationStatesConfig `mapstructure:"nationstates"`
	HTTP         HTTPConfig         `mapstructure:"http"`
	Confirm      ConfirmConfig      `mapstructure:"confirm"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

type NationStatesConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type HTTPConfig struct {
	// Zero disables the timeout
	Timeout time.Duration `mapstructure:"timeout"`
}

type ConfirmConfig struct {
	Mode     session.Mode  `mapstructure:"mode"`
	Interval time.Duration `mapstructure:"interval"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func (c *Config) GetBaseURL() string {
	return c.NationStates.BaseURL
}

// NewConfirmer builds the request gate selected by the confirm section.
func (c *Config) NewConfirmer() (session.Confirmer, error) {
	return session.NewConfirmer(c.Confirm.Mode, c.Confirm.Interval)
}

// NewClient builds the shared session for a run.
func (c *Config) NewClient() (*session.Client, error) {

	confirmer, err := c.NewConfirmer()
	if err != nil {
		return nil, err
	}

	return session.NewClient(session.Options{
		Nation:    c.MainNation,
		Timeout:   c.HTTP.Timeout,
		Confirmer: confirmer,
	}), nil
}
