package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sweeze/endo/internal/common"
)

// listCmd only reads the API, so nothing is gated and no login happens
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the nations a run would endorse",
	RunE: func(cmd *cobra.Command, args []string) error {

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		client, err := newNationStatesClient()
		if err != nil {
			return err
		}

		nations, err := client.CrossList(ctx, cfg.Point, cfg.WANation)
		if err != nil {
			return fmt.Errorf("failed to get cross list of %s: %w", cfg.Point, err)
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Cross list of %s (%s)",
			cfg.Point, common.Count(len(nations), "nation"))))

		for _, nation := range nations {
			fmt.Println("  " + nation)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
