package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <position>",
		Short: "Mark the pending task at a queue position as completed",
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
			if err := app.Store.Complete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("Completed task at position %d\n", pos)
			return nil
		},
	}
}
