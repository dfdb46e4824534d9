// Package cli is the thin presentation layer over the task store. It
// resolves display positions to task ids, builds full reordered id
// sequences for move, and asks for confirmation before destructive
// commands; the store itself stays free of any user-facing text.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/todoqueue/internal/config"
	"github.com/nhle/todoqueue/internal/store"
)

// App carries the opened configuration and store shared by all commands.
type App struct {
	Config *config.Config
	Store  store.Store

	closer func() error
}

// NewRootCmd builds the todoqueue command tree. The store is opened once
// before any subcommand runs and closed after it returns.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "todoqueue",
		Short:         "A queue-ordered todo list",
		Long:          "todoqueue keeps a reorderable queue of pending tasks and a history of completed ones in a local SQLite file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			if cfgPath == "" {
				cfgPath = config.DefaultConfigPath()
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			dbPath, _ := cmd.Flags().GetString("db")
			if dbPath != "" {
				cfg.Database.Path = dbPath
			}

			s, err := store.NewSQLiteStore(cfg.Database.Path)
			if err != nil {
				return err
			}

			app.Config = cfg
			app.Store = s
			app.closer = s.Close
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.closer == nil {
				return nil
			}
			return app.closer()
		},
	}

	root.PersistentFlags().String("config", "", "path to the config file")
	root.PersistentFlags().String("db", "", "path to the database file (overrides config)")

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newDoneCmd(app),
		newRemoveCmd(app),
		newMoveCmd(app),
		newCategoriesCmd(app),
		newClearCmd(app),
		newStatsCmd(app),
	)

	return root
}

// pendingAt resolves a 1-based display position to the task occupying it.
func pendingAt(ctx context.Context, app *App, pos int) (string, error) {
	tasks, err := app.Store.ListPending(ctx)
	if err != nil {
		return "", err
	}
	if pos < 1 || pos > len(tasks) {
		return "", fmt.Errorf("no pending task at position %d (have %d)", pos, len(tasks))
	}
	return tasks[pos-1].ID, nil
}

// confirm prompts on stdin and returns true for an explicit yes.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
