package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/khangtapcode/TerminalTodo/internal/session"
	"github.com/khangtapcode/TerminalTodo/internal/stopwatch"
)

const (
	appTitle     = "TerminalTodo"
	tasksHeading = "📋 TASKS:"
	noTasks      = "No tasks yet. Add one!"
	watchHeading = "⏱️  STOPWATCH:"
	watchRunning = "Running for %d seconds..."
	watchIdle    = "Not running."
)

// Screen renders the header, task list and stopwatch line for s.
// Running time is truncated to whole seconds.
func Screen(st Styles, s session.State, now time.Time) string {
	var b strings.Builder

	b.WriteString(st.Header.Render(appTitle))
	b.WriteString("\n\n")

	b.WriteString(st.Section.Render(tasksHeading))
	b.WriteString("\n")
	list := s.Tasks.List()
	if len(list) == 0 {
		fmt.Fprintf(&b, "  %s\n", noTasks)
	}
	for i, task := range list {
		style := st.Pending
		if task.IsDone() {
			style = st.Done
		}
		fmt.Fprintf(&b, "  %d. %s\n", i+1, style.Render(task.Description))
	}
	b.WriteString("\n")

	b.WriteString(st.Section.Render(watchHeading))
	b.WriteString("\n")
	if s.Stopwatch.Status().Running {
		secs := stopwatch.WholeSeconds(s.Stopwatch.Elapsed(now))
		fmt.Fprintf(&b, "  "+watchRunning+"\n", secs)
	} else {
		fmt.Fprintf(&b, "  %s\n", watchIdle)
	}
	b.WriteString("\n")

	return b.String()
}
