package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/khangtapcode/TerminalTodo/internal/session"
)

const cursorMark = "❯ "

// selectModel is a single-choice list prompt.
type selectModel struct {
	prompt  string
	options []string
	tone    session.Tone
	styles  Styles
	keys    keyMap

	cursor int
	width  int

	chosen      bool
	cancelled   bool
	interrupted bool
}

func newSelectModel(st Styles, prompt string, options []string, tone session.Tone) selectModel {
	return selectModel{
		prompt:  prompt,
		options: options,
		tone:    tone,
		styles:  st,
		keys:    defaultKeys(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Interrupt):
			m.interrupted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			if len(m.options) == 0 {
				return m, nil
			}
			m.chosen = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	question := m.styles.Question.Render("? " + m.prompt)

	if m.chosen {
		return question + " " + m.styles.Answer.Render(m.options[m.cursor]) + "\n"
	}
	if m.cancelled || m.interrupted {
		return question + "\n"
	}

	highlight := m.styles.Cursor
	if m.tone == session.ToneDanger {
		highlight = m.styles.Danger
	}

	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n")
	for i, opt := range m.options {
		opt = m.fit(opt)
		if i == m.cursor {
			b.WriteString(highlight.Render(cursorMark + opt))
		} else {
			b.WriteString(strings.Repeat(" ", ansi.StringWidth(cursorMark)) + opt)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render(m.keys.selectHelp()))
	b.WriteString("\n")
	return b.String()
}

// fit truncates an option to the terminal width, leaving room for the cursor.
func (m selectModel) fit(opt string) string {
	if m.width <= 0 {
		return opt
	}
	room := m.width - ansi.StringWidth(cursorMark)
	if room <= 1 {
		return opt
	}
	return ansi.Truncate(opt, room, "…")
}

// result reports the chosen index or why there is none. A program that
// quit without a key, such as on SIGTERM, counts as an interrupt.
func (m selectModel) result() (int, error) {
	switch {
	case m.chosen:
		return m.cursor, nil
	case m.cancelled:
		return -1, session.ErrCancelled
	default:
		return -1, session.ErrInterrupted
	}
}
