package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories currently in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				return listSuggestions(app, cmd)
			}

			names, err := app.Store.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("No categories in use")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "include remembered categories with no remaining tasks")
	return cmd
}

func listSuggestions(app *App, cmd *cobra.Command) error {
	cats, err := app.Store.CategorySuggestions(cmd.Context())
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		fmt.Println("No categories remembered")
		return nil
	}
	for _, c := range cats {
		fmt.Printf("%s  %s\n", c.Name, color.HiBlackString(c.Color))
	}
	return nil
}
