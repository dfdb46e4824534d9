package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a pending task to a new queue position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("position must be a number, got %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position must be a number, got %q", args[1])
			}

			tasks, err := app.Store.ListPending(cmd.Context())
			if err != nil {
				return err
			}
			n := len(tasks)
			if from < 1 || from > n {
				return fmt.Errorf("no pending task at position %d (have %d)", from, n)
			}
			if to < 1 || to > n {
				return fmt.Errorf("target position %d out of range (have %d)", to, n)
			}

			// The store wants the complete new order, so splice the id
			// sequence here and hand it over in one call.
			ids := make([]string, 0, n)
			for _, t := range tasks {
				ids = append(ids, t.ID)
			}
			moved := ids[from-1]
			ids = append(ids[:from-1], ids[from:]...)
			rest := append([]string{}, ids[to-1:]...)
			ids = append(append(ids[:to-1], moved), rest...)

			if err := app.Store.Reorder(cmd.Context(), ids); err != nil {
				return err
			}

			fmt.Printf("Moved task from position %d to %d\n", from, to)
			return nil
		},
	}
}
