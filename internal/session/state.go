package session

import (
	"github.com/khangtapcode/TerminalTodo/internal/stopwatch"
	"github.com/khangtapcode/TerminalTodo/internal/tasks"
)

// State is everything a session knows about.
type State struct {
	Tasks     tasks.Store
	Stopwatch stopwatch.Stopwatch
}

// NewState returns a state holding the seed tasks and an idle stopwatch.
func NewState(seed []tasks.Task) State {
	return State{Tasks: tasks.NewStore(seed...)}
}
