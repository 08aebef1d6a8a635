package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sweeze/endo/internal/common"
	"github.com/sweeze/endo/internal/endorse"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Log in and endorse the cross list (default command)",
	RunE:  runEndorse,
}

func runEndorse(cmd *cobra.Command, _ []string) error {

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	client, err := newNationStatesClient()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Crossing %s as %s", cfg.Point, cfg.WANation)))

	runner := endorse.NewRunner(client, &consoleReporter{}, endorse.Settings{
		WANation: cfg.WANation,
		Password: cfg.Password,
		Point:    cfg.Point,
		DryRun:   dryRun,
	})

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Would endorse %s:", common.Count(len(summary.Targets), "nation"))))
		fmt.Println(strings.Join(summary.Targets, "\n"))
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s endorsed, %s",
		common.Count(len(summary.Endorsed), "nation"),
		common.Count(len(summary.Failed), "failure"),
	)))

	return nil
}

// consoleReporter prints the per nation outcome as it happens
type consoleReporter struct{}

func (consoleReporter) Endorsed(nation string) {
	fmt.Println(successStyle.Render(fmt.Sprintf("Endorsed %s", nation)))
}

func (consoleReporter) Failed(nation string) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("Failed to endorse %s", nation)))
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "Log in and resolve targets without endorsing")
	rootCmd.AddCommand(runCmd)
}
