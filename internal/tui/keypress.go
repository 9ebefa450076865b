package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khangtapcode/TerminalTodo/internal/session"
)

// keypressModel waits for any key.
type keypressModel struct {
	prompt string
	styles Styles
	keys   keyMap

	pressed     bool
	interrupted bool
}

func newKeypressModel(st Styles, prompt string) keypressModel {
	return keypressModel{prompt: prompt, styles: st, keys: defaultKeys()}
}

func (m keypressModel) Init() tea.Cmd {
	return nil
}

func (m keypressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Interrupt) {
			m.interrupted = true
		} else {
			m.pressed = true
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m keypressModel) View() string {
	if m.pressed || m.interrupted {
		return ""
	}
	return m.styles.Muted.Render(m.prompt) + "\n"
}

func (m keypressModel) result() error {
	if m.pressed {
		return nil
	}
	return session.ErrInterrupted
}
