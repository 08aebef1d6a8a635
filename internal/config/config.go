package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/sweeze/endo/internal/common"
	"github.com/sweeze/endo/internal/session"
)

const DefaultBaseURL = "https://www.nationstates.net"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrMissingField   = errors.New("missing required config field")
	ErrInvalidField   = errors.New("invalid config field")
)

// requiredFields are checked in this order so the first missing key reported
// is stable.
var requiredFields = []string{
	"main_nation",
	"wa_nation",
	"password",
	"point",
}

// Load reads config.toml from the working directory, or configFile when it
// is set. Unlike the optional sections, the file itself and the nation keys
// are mandatory: no partial configuration is ever returned.
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	setupViperConfig(v, configFile)
	bindEnvironmentVariables(v)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := setupLogging(config, v); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

func setupViperConfig(v *viper.Viper, configFile string) {
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	v.SetEnvPrefix("ENDO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// bindEnvironmentVariables binds keys that may be absent from the file so
// the environment can still supply them
func bindEnvironmentVariables(v *viper.Viper) {
	v.BindEnv("main_nation", "ENDO_MAIN_NATION")
	v.BindEnv("wa_nation", "ENDO_WA_NATION")
	v.BindEnv("password", "ENDO_PASSWORD")
	v.BindEnv("point", "ENDO_POINT")

	v.BindEnv("nationstates.base_url", "ENDO_NATIONSTATES_BASE_URL")
	v.BindEnv("confirm.mode", "ENDO_CONFIRM_MODE")

	v.BindEnv("logging.level", "ENDO_LOGGING_LEVEL")
	v.BindEnv("logging.format", "ENDO_LOGGING_FORMAT")
}

func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// Validate checks the required keys and the values of optional sections.
func (c *Config) Validate() error {

	values := map[string]string{
		"main_nation": c.MainNation,
		"wa_nation":   c.WANation,
		"password":    c.Password,
		"point":       c.Point,
	}

	for _, key := range requiredFields {
		if len(strings.TrimSpace(values[key])) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	for _, key := range []string{"main_nation", "wa_nation", "point"} {
		if !common.IsValidNationName(values[key]) {
			return fmt.Errorf("%w: %s is not a nation name: %q", ErrInvalidField, key, values[key])
		}
	}

	if !common.IsValidURL(c.NationStates.BaseURL) {
		return fmt.Errorf("%w: nationstates.base_url: %q", ErrInvalidField, c.NationStates.BaseURL)
	}

	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("%w: http.timeout must not be negative", ErrInvalidField)
	}

	switch session.Mode(strings.ToLower(string(c.Confirm.Mode))) {
	case session.ModePrompt, session.ModeLine:
	case session.ModeDelay:
		if c.Confirm.Interval <= 0 {
			return fmt.Errorf("%w: confirm.interval must be positive in delay mode", ErrInvalidField)
		}
	default:
		return fmt.Errorf("%w: confirm.mode: %q", ErrInvalidField, c.Confirm.Mode)
	}

	return nil
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config, v *viper.Viper) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	switch strings.ToLower(config.Logging.Output) {
	case "stdout":
		logrus.SetOutput(os.Stdout)
	default:
		// Keep stdout for prompts and the endorsement report
		logrus.SetOutput(os.Stderr)
	}

	if logrusLevel >= logrus.DebugLevel {
		for key, value := range v.AllSettings() {
			if key == "password" {
				value = "********"
			}
			logrus.Debugf("Config '%s': %v", key, value)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {

	v.SetDefault("nationstates.base_url", DefaultBaseURL)

	// No timeout unless asked for
	v.SetDefault("http.timeout", "0s")

	v.SetDefault("confirm.mode", string(session.ModePrompt))
	v.SetDefault("confirm.interval", "6s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
}
