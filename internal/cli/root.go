// Package cli exposes the dashboard as a cobra command tree and an
// interactive bubbletea shell.
package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timepaisa/internal/app"
	"github.com/alexanderramin/timepaisa/internal/config"
	"github.com/alexanderramin/timepaisa/internal/logging"
)

// App holds everything the commands act on. One App lives for the whole
// process, so the shell keeps its entries between commands.
type App struct {
	Dashboard *app.Dashboard
	Config    config.Config
	Logger    *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The root command
	// starts the shell when it is and no subcommand was given.
	IsInteractive func() bool
	// Now is the clock used for default dates.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return logging.Discard()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timepaisa" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timepaisa",
		Short: "Track where your time and money go, and get an AI review of your week",
		Long: `timepaisa keeps a time log and a money log for the current session,
shows per-category totals and a daily trend, and asks Gemini for an
honest weekly review.

Run without arguments in a terminal to start the interactive shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive() {
				return runShell(a)
			}
			return cmd.Help()
		},
	}

	// Read before the tree is built (see cmd/timepaisa); declared here so
	// cobra accepts them and lists them in help.
	root.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/timepaisa/config.toml)")
	root.PersistentFlags().Bool("demo", false, "start with sample entries")

	root.AddCommand(
		newTimeCmd(a),
		newMoneyCmd(a),
		newDashboardCmd(a),
		newAnalyzeCmd(a),
		newInsightCmd(a),
		newConfigCmd(a),
		newShellCmd(a),
	)

	return root
}
