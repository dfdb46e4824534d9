package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <position>",
		Short: "Delete the pending task at a queue position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("position must be a number, got %q", args[0])
			}

			id, err := pendingAt(cmd.Context(), app, pos)
			if err != nil {
				return err
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm(fmt.Sprintf("Delete task at position %d?", pos)) {
				fmt.Println("Cancelled")
				return nil
			}

			if err := app.Store.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted task at position %d\n", pos)
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "skip confirmation")
	return cmd
}
