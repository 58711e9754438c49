package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/internal/store"
	"taskdeck/internal/term"
	"taskdeck/internal/tui"
)

// App carries the flag-level state shared by every subcommand.
type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "Keyboard-driven task manager (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskdeck

  # Scriptable commands
  taskdeck tasks list
  taskdeck tasks add --title "Write report" --priority high
  taskdeck projects list
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI when the terminal supports it.
			if len(args) > 0 {
				return cmd.Help()
			}
			dir, err := app.storeDir()
			if err != nil {
				return err
			}
			if !term.Interactive() {
				// Degraded mode: no raw-mode terminal. Print the plain task
				// listing and point at the scriptable surface.
				if err := printTaskList(cmd, store.Store{Dir: dir}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(),
					"taskdeck: not a terminal; interactive mode disabled (see `taskdeck --help` for scriptable commands)")
				return nil
			}
			return tui.Run(dir)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKDECK_DIR", ""),
		"Path to the data dir (default: ~/.taskdeck)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTagsCmd(app))

	return cmd
}

func (app *App) storeDir() (string, error) {
	if app.Dir != "" {
		return app.Dir, nil
	}
	return store.DefaultDir()
}

func (app *App) openStore() (store.Store, error) {
	dir, err := app.storeDir()
	if err != nil {
		return store.Store{}, err
	}
	return store.Store{Dir: dir}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
