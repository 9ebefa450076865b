// Package tui implements the TerminalTodo session UI on a character terminal.
//
// Each prompt runs its own bubbletea program inline and returns when the
// user answers, so the session loop sees every prompt as a plain blocking
// call.
package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khangtapcode/TerminalTodo/internal/config"
	"github.com/khangtapcode/TerminalTodo/internal/session"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\x1b[H\x1b[2J"

// Terminal is a session.UI backed by an input reader and an output writer,
// normally the process's stdin and stdout.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	styles Styles
	clear  bool

	// clearCommand builds the platform clear command; nil skips straight
	// to the escape sequence.
	clearCommand func() *exec.Cmd
}

var _ session.UI = (*Terminal)(nil)

// New returns a Terminal reading from in and writing to out.
//
// in should be an *os.File, normally os.Stdin. bubbletea can only cancel
// its input reader on a file, so with any other reader the goroutine left
// behind by one prompt reads keys meant for the next.
func New(cfg config.UIConfig, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:           in,
		out:          out,
		styles:       NewStyles(lipgloss.NewRenderer(out), cfg),
		clear:        cfg.Clear,
		clearCommand: platformClear,
	}
}

func platformClear() *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/c", "cls")
	}
	return exec.Command("clear")
}

// Clear wipes the screen with the platform clear command, falling back to
// escape codes when the command is unavailable.
func (t *Terminal) Clear() error {
	if !t.clear {
		return nil
	}

	if t.clearCommand != nil {
		cmd := t.clearCommand()
		cmd.Stdout = t.out
		err := cmd.Run()
		if err == nil {
			return nil
		}
		log.Printf("clear command failed, using escape codes: %v", err)
	}

	_, err := io.WriteString(t.out, clearSequence)
	return err
}

// Render draws the current state.
func (t *Terminal) Render(s session.State, now time.Time) error {
	_, err := io.WriteString(t.out, Screen(t.styles, s, now))
	return err
}

// Select shows options and returns the chosen index.
func (t *Terminal) Select(ctx context.Context, prompt string, options []string, tone session.Tone) (int, error) {
	final, err := t.run(ctx, newSelectModel(t.styles, prompt, options, tone))
	if err != nil {
		return -1, err
	}
	return final.(selectModel).result()
}

// Ask reads one line of text.
func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	final, err := t.run(ctx, newInputModel(t.styles, prompt))
	if err != nil {
		return "", err
	}
	return final.(inputModel).result()
}

// WaitKey blocks until a key is pressed.
func (t *Terminal) WaitKey(ctx context.Context, prompt string) error {
	final, err := t.run(ctx, newKeypressModel(t.styles, prompt))
	if err != nil {
		return err
	}
	return final.(keypressModel).result()
}

// Notify prints a success line.
func (t *Terminal) Notify(message string) error {
	_, err := fmt.Fprintln(t.out, t.styles.Success.Render("✔ "+message))
	return err
}

// Farewell prints the closing line.
func (t *Terminal) Farewell(message string) error {
	_, err := fmt.Fprintln(t.out, t.styles.Farewell.Render(message))
	return err
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}
