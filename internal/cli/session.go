package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/khangtapcode/TerminalTodo/internal/assets"
	"github.com/khangtapcode/TerminalTodo/internal/config"
	"github.com/khangtapcode/TerminalTodo/internal/session"
	"github.com/khangtapcode/TerminalTodo/internal/tasks"
	"github.com/khangtapcode/TerminalTodo/internal/tui"
)

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	state, err := initialState(cfg)
	if err != nil {
		return err
	}

	term := tui.New(cfg.UI, cmd.InOrStdin(), cmd.OutOrStdout())
	runner := session.NewRunner(term, session.Options{
		StartPause: cfg.Stopwatch.StartPause,
	})

	log.Printf("session started: tasks=%d", state.Tasks.Len())
	_, err = runner.Run(cmd.Context(), state)
	return err
}

// initialState builds the starting state, with the seed tasks if enabled
func initialState(cfg *config.Config) (session.State, error) {
	if !cfg.Seed {
		return session.NewState(nil), nil
	}

	seed, err := tasks.LoadSeed(assets.Seed)
	if err != nil {
		return session.State{}, fmt.Errorf("failed to load seed tasks: %w", err)
	}
	return session.NewState(seed), nil
}

// setupLogging points the standard logger at the configured file. The
// terminal belongs to the UI, so without a file the log is discarded.
func setupLogging(cfg config.LogConfig) (func(), error) {
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(cfg.File, "terminaltodo")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
