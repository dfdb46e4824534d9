package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show pending and completed task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, completed, err := app.Store.Counts(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Pending:   %s\n", color.CyanString("%d", pending))
			fmt.Printf("Completed: %s\n", color.GreenString("%d", completed))
			return nil
		},
	}
}
