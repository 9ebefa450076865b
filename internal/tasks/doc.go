// Package tasks holds the in-memory task list for a TerminalTodo session.
//
// # Store
//
// A Store is an ordered list of tasks. It is a value: Add, Toggle and Delete
// return a new Store and never modify the receiver, so a session can hand the
// old state around without aliasing the new one.
//
// Tasks are addressed by ID, not by description. Two tasks may share the same
// description and still be toggled or deleted independently.
//
// # Seed File Format
//
// A session can start from a seed list (see LoadSeed) in YAML:
//
//	tasks:
//	  - description: "Package this app into a single file"
//	    status: pending
//	  - description: "Share it with a friend"
//	    status: done
//
// Status is optional and defaults to pending.
package tasks
