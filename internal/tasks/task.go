package tasks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrTaskNotFound is returned when no task has the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidStatus is returned when a status string is neither pending nor done.
	ErrInvalidStatus = errors.New("invalid task status")
)

// Status is the completion state of a task.
type Status int

const (
	Pending Status = iota
	Done
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == Done {
		return Pending
	}
	return Done
}

// ParseStatus converts "pending" or "done" to a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "pending", "":
		return Pending, nil
	case "done":
		return Done, nil
	default:
		return Pending, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// UnmarshalYAML decodes a status scalar.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task is a single entry in the list.
type Task struct {
	ID          uuid.UUID `yaml:"-"`
	Description string    `yaml:"description"`
	Status      Status    `yaml:"status"`
}

// IsDone reports whether the task has been completed.
func (t Task) IsDone() bool {
	return t.Status == Done
}
