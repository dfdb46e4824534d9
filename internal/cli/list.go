package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nhle/todoqueue/internal/model"
)

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending tasks in queue order",
		RunE: func(cmd *cobra.Command, args []string) error {
			done, _ := cmd.Flags().GetBool("done")
			if done {
				return listCompleted(app, cmd)
			}
			return listPending(app, cmd)
		},
	}

	cmd.Flags().Bool("done", false, "show completed tasks instead")
	return cmd
}

func listPending(app *App, cmd *cobra.Command) error {
	tasks, err := app.Store.ListPending(cmd.Context())
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No pending tasks")
		return nil
	}

	for _, t := range tasks {
		fmt.Printf("%3d. %s%s\n", t.OrderIndex+1, t.Text, taskMeta(app, t))
	}
	return nil
}

func listCompleted(app *App, cmd *cobra.Command) error {
	tasks, err := app.Store.ListCompleted(cmd.Context())
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No completed tasks")
		return nil
	}

	green := color.New(color.FgGreen)
	for _, t := range tasks {
		when := ""
		if t.CompletedAt != nil {
			when = t.CompletedAt.Local().Format("2006-01-02 15:04")
		}
		green.Printf("  ✓ %s", t.Text)
		fmt.Printf("%s  (%s)\n", taskMeta(app, t), when)
	}
	return nil
}

// taskMeta renders the category and tag suffix for a list line.
func taskMeta(app *App, t model.Task) string {
	meta := ""
	if t.Category != "" {
		meta += "  " + color.CyanString("[%s]", t.Category)
	}
	if t.Tags != "" && app.Config.Display.ShowTags {
		meta += "  " + color.YellowString("#%s", t.Tags)
	}
	return meta
}
