package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sweeze/endo/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// No config needed to print a version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("endo %s\n", common.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
