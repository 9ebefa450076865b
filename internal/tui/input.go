package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khangtapcode/TerminalTodo/internal/session"
)

const inputCharLimit = 256

// inputModel reads one line of free text.
type inputModel struct {
	prompt string
	input  textinput.Model
	styles Styles
	keys   keyMap

	done        bool
	cancelled   bool
	interrupted bool
}

func newInputModel(st Styles, prompt string) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = inputCharLimit
	ti.Width = 50
	ti.Focus()

	return inputModel{
		prompt: prompt,
		input:  ti,
		styles: st,
		keys:   defaultKeys(),
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Interrupt):
			m.interrupted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	question := m.styles.Question.Render("? "+m.prompt) + " "
	if m.done {
		return question + m.styles.Answer.Render(m.input.Value()) + "\n"
	}
	if m.cancelled || m.interrupted {
		return question + "\n"
	}
	return question + m.input.View() + "\n"
}

func (m inputModel) result() (string, error) {
	switch {
	case m.done:
		return m.input.Value(), nil
	case m.cancelled:
		return "", session.ErrCancelled
	default:
		return "", session.ErrInterrupted
	}
}
