// Package session runs the interactive TerminalTodo loop.
//
// # State and Events
//
// State holds the task store and the stopwatch. It changes only through
// Reduce, which takes the current State and an Event and returns the next
// State plus an Outcome. Reduce does no I/O.
//
// # Loop
//
// Runner.Run repeats one step until the user exits:
//
//  1. Clear the screen and render the state.
//  2. Build the menu for the state (see Menu).
//  3. Block on the user's choice.
//  4. Ask follow-up questions, turn the answer into an Event, reduce it.
//  5. Show confirmations (stopwatch started, elapsed time on stop).
//
// The terminal is reached only through the UI interface, so the loop can be
// driven by a scripted UI in tests.
package session
