package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task to the back of the queue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			tags, _ := cmd.Flags().GetString("tags")
			text := strings.Join(args, " ")

			task, err := app.Store.Add(cmd.Context(), text, category, tags)
			if err != nil {
				return err
			}

			fmt.Printf("Added at position %d: %s\n", task.OrderIndex+1, task.Text)
			return nil
		},
	}

	cmd.Flags().StringP("category", "c", "", "category label")
	cmd.Flags().StringP("tags", "t", "", "comma-separated tags")
	return cmd
}
