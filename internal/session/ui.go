package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCancelled is returned by a prompt the user backed out of.
	ErrCancelled = errors.New("prompt cancelled")

	// ErrInterrupted is returned by a prompt when the user or a signal asked
	// to quit.
	ErrInterrupted = errors.New("interrupted")
)

// Tone selects the highlight colour of a selection prompt.
type Tone int

const (
	ToneNormal Tone = iota
	ToneDanger
)

// UI is the terminal surface the loop drives. Every prompt blocks until
// the user answers.
type UI interface {
	// Clear resets the visible output region.
	Clear() error

	// Render draws the header, task list and stopwatch line for s.
	Render(s State, now time.Time) error

	// Select asks the user to pick one option and returns its index.
	Select(ctx context.Context, prompt string, options []string, tone Tone) (int, error)

	// Ask reads one line of free text.
	Ask(ctx context.Context, prompt string) (string, error)

	// Notify prints a confirmation message.
	Notify(message string) error

	// WaitKey blocks until any key is pressed.
	WaitKey(ctx context.Context, prompt string) error

	// Farewell prints the closing message.
	Farewell(message string) error
}
