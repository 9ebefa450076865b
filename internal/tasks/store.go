package tasks

import (
	"strings"

	"github.com/google/uuid"
)

// Store is an ordered, copy-on-write list of tasks.
type Store struct {
	items []Task
}

// NewStore returns a store holding the given tasks in order.
// Tasks without an ID are assigned one.
func NewStore(items ...Task) Store {
	out := make([]Task, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == uuid.Nil {
			out[i].ID = uuid.New()
		}
	}
	return Store{items: out}
}

// Len returns the number of tasks.
func (s Store) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the store holds no tasks.
func (s Store) IsEmpty() bool {
	return len(s.items) == 0
}

// List returns a copy of the tasks in insertion order.
func (s Store) List() []Task {
	out := make([]Task, len(s.items))
	copy(out, s.items)
	return out
}

// Descriptions returns the task descriptions in insertion order.
func (s Store) Descriptions() []string {
	out := make([]string, len(s.items))
	for i, t := range s.items {
		out[i] = t.Description
	}
	return out
}

// Find returns the task with the given ID.
func (s Store) Find(id uuid.UUID) (Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return Task{}, false
}

// Add appends a pending task. Blank descriptions are ignored and the
// returned store is the receiver unchanged.
func (s Store) Add(description string) (Store, Task, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		return s, Task{}, false
	}

	task := Task{
		ID:          uuid.New(),
		Description: description,
		Status:      Pending,
	}

	out := make([]Task, len(s.items), len(s.items)+1)
	copy(out, s.items)
	out = append(out, task)
	return Store{items: out}, task, true
}

// Toggle flips the status of the task with the given ID.
func (s Store) Toggle(id uuid.UUID) (Store, error) {
	i := s.index(id)
	if i < 0 {
		return s, ErrTaskNotFound
	}

	out := s.List()
	out[i].Status = out[i].Status.Toggled()
	return Store{items: out}, nil
}

// Delete removes the task with the given ID.
func (s Store) Delete(id uuid.UUID) (Store, error) {
	i := s.index(id)
	if i < 0 {
		return s, ErrTaskNotFound
	}

	out := make([]Task, 0, len(s.items)-1)
	out = append(out, s.items[:i]...)
	out = append(out, s.items[i+1:]...)
	return Store{items: out}, nil
}

// Stats returns task counts by status.
func (s Store) Stats() (total, done, pending int) {
	for _, t := range s.items {
		total++
		if t.IsDone() {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s Store) index(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
