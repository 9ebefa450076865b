package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a state transition request produced by the loop.
type Event interface {
	isEvent()
}

// AddTask appends a task. A blank description is ignored.
type AddTask struct {
	Description string
}

// ToggleTask flips the status of one task.
type ToggleTask struct {
	ID uuid.UUID
}

// DeleteTask removes one task.
type DeleteTask struct {
	ID uuid.UUID
}

// StartStopwatch starts measuring at At.
type StartStopwatch struct {
	At time.Time
}

// StopStopwatch stops measuring at At.
type StopStopwatch struct {
	At time.Time
}

// Quit ends the session.
type Quit struct{}

func (AddTask) isEvent()        {}
func (ToggleTask) isEvent()     {}
func (DeleteTask) isEvent()     {}
func (StartStopwatch) isEvent() {}
func (StopStopwatch) isEvent()  {}
func (Quit) isEvent()           {}

// Outcome reports what a transition produced besides the new state.
type Outcome struct {
	// Changed is false when the event was a no-op.
	Changed bool

	// Elapsed is set by StopStopwatch.
	Elapsed time.Duration

	// Quit is set by Quit.
	Quit bool
}

// Reduce applies ev to s. It does no I/O. On error the returned state is s.
func Reduce(s State, ev Event) (State, Outcome, error) {
	switch e := ev.(type) {
	case AddTask:
		next, _, added := s.Tasks.Add(e.Description)
		if !added {
			return s, Outcome{}, nil
		}
		s.Tasks = next
		return s, Outcome{Changed: true}, nil

	case ToggleTask:
		next, err := s.Tasks.Toggle(e.ID)
		if err != nil {
			return s, Outcome{}, fmt.Errorf("toggle %s: %w", e.ID, err)
		}
		s.Tasks = next
		return s, Outcome{Changed: true}, nil

	case DeleteTask:
		next, err := s.Tasks.Delete(e.ID)
		if err != nil {
			return s, Outcome{}, fmt.Errorf("delete %s: %w", e.ID, err)
		}
		s.Tasks = next
		return s, Outcome{Changed: true}, nil

	case StartStopwatch:
		next, err := s.Stopwatch.Start(e.At)
		if err != nil {
			return s, Outcome{}, err
		}
		s.Stopwatch = next
		return s, Outcome{Changed: true}, nil

	case StopStopwatch:
		next, elapsed, err := s.Stopwatch.Stop(e.At)
		if err != nil {
			return s, Outcome{}, err
		}
		s.Stopwatch = next
		return s, Outcome{Changed: true, Elapsed: elapsed}, nil

	case Quit:
		return s, Outcome{Quit: true}, nil

	default:
		return s, Outcome{}, fmt.Errorf("unknown event %T", ev)
	}
}
