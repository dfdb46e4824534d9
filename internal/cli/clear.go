package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm("Delete all completed tasks?") {
				fmt.Println("Cancelled")
				return nil
			}

			n, err := app.Store.ClearCompleted(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Cleared %d completed task(s)\n", n)
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "skip confirmation")
	return cmd
}
