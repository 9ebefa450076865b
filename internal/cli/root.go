package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khangtapcode/TerminalTodo/internal/config"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "terminaltodo",
		Short: "TerminalTodo - a task list and stopwatch for your terminal",
		Long: `TerminalTodo keeps a small task list and a stopwatch in an interactive terminal menu.

Nothing is saved: tasks and the stopwatch live only for the current session.`,
		RunE:          runSession, // Default action is an interactive session
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := config.DefaultConfig()

	// Global flags, each overridable by a TERMINALTODO_* environment variable
	flags := rootCmd.PersistentFlags()
	flags.Bool("seed", defaults.Seed, "Start with the bundled example tasks")
	flags.Duration("start-pause", defaults.Stopwatch.StartPause, "Pause after starting the stopwatch")
	flags.String("accent", defaults.UI.Accent, "Accent colour (ANSI number or #rrggbb)")
	flags.String("danger", defaults.UI.Danger, "Colour used when choosing a task to delete")
	flags.Bool("clear", defaults.UI.Clear, "Clear the screen before each menu")
	flags.String("log-file", defaults.Log.File, "Write debug log to this file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
