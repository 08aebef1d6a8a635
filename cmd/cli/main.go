package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/sweeze/endo/internal/config"
	"github.com/sweeze/endo/internal/nationstates"
	"github.com/sweeze/endo/internal/session"
)

// Global configuration instance
var cfg *config.Config

// loadConfig loads the configuration based on the --config flag or ./config.toml
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunConfigE(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	confirmMode, err := cmd.Flags().GetString("confirm")
	if err == nil && len(confirmMode) > 0 {
		cfg.Confirm.Mode = session.Mode(confirmMode)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// newNationStatesClient builds the session and host client for a command
func newNationStatesClient() (*nationstates.Client, error) {
	client, err := cfg.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return nationstates.NewClient(client, cfg.GetBaseURL()), nil
}

var rootCmd = &cobra.Command{
	Use:   "endo",
	Short: "Endorse every nation endorsing your point",
	Long: `endo logs your WA nation in, fetches the nations endorsing the
configured point and endorses each of them in turn.

Every request to the site asks for confirmation before it is sent, so the
run stays human initiated. Settings are read from ./config.toml:

  main_nation = "your main nation"
  wa_nation   = "your wa nation"
  password    = "wa nation password"
  point       = "nation whose endorsers to cross"`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRunConfigE,
	RunE:              runEndorse,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default is ./config.toml)")
	rootCmd.PersistentFlags().String("confirm", "", "Override confirm mode: prompt, line or delay")
	rootCmd.Flags().Bool("dry-run", false, "Log in and resolve targets without endorsing")
}

func GetCommandOptions() *cobra.Command {
	return rootCmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}
