package session

import "fmt"

// Action is a top-level menu entry.
type Action int

const (
	ActionAdd Action = iota
	ActionToggle
	ActionDelete
	ActionStartStopwatch
	ActionStopStopwatch
	ActionExit
)

// Label returns the text shown for the action in the menu.
func (a Action) Label() string {
	switch a {
	case ActionAdd:
		return "✅ Add a new task"
	case ActionToggle:
		return "💅 Toggle task status (done/pending)"
	case ActionDelete:
		return "❌ Delete a task"
	case ActionStartStopwatch:
		return "▶️  Start the Stopwatch"
	case ActionStopStopwatch:
		return "⏹️  Stop the Stopwatch"
	case ActionExit:
		return "🚪 Exit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionToggle:
		return "toggle"
	case ActionDelete:
		return "delete"
	case ActionStartStopwatch:
		return "start_stopwatch"
	case ActionStopStopwatch:
		return "stop_stopwatch"
	case ActionExit:
		return "exit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Menu returns the actions offered for s, in display order.
// Toggle and delete need at least one task; exactly one stopwatch
// action is present; exit is always last.
func Menu(s State) []Action {
	menu := []Action{ActionAdd}

	if !s.Tasks.IsEmpty() {
		menu = append(menu, ActionToggle, ActionDelete)
	}

	if s.Stopwatch.IsRunning() {
		menu = append(menu, ActionStopStopwatch)
	} else {
		menu = append(menu, ActionStartStopwatch)
	}

	return append(menu, ActionExit)
}

// Labels maps actions to their menu labels.
func Labels(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Label()
	}
	return out
}
