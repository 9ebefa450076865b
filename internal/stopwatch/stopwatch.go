// Package stopwatch measures a single elapsed-time interval.
//
// A Stopwatch is either idle or running since some instant. Elapsed time is
// never ticked; it is computed from the caller's clock when asked.
package stopwatch

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrAlreadyRunning = errors.New("stopwatch already running")
	ErrNotRunning     = errors.New("stopwatch not running")
)

// Stopwatch is a value: Start and Stop return the next state.
// The zero value is idle.
type Stopwatch struct {
	since   time.Time
	running bool
}

// Status describes the stopwatch at a point in time.
type Status struct {
	Running bool
	Since   time.Time
}

// Running returns a stopwatch that started at since.
func Running(since time.Time) Stopwatch {
	return Stopwatch{since: since, running: true}
}

// Status reports whether the stopwatch is running and since when.
func (w Stopwatch) Status() Status {
	return Status{Running: w.running, Since: w.since}
}

// IsRunning reports whether a measurement is in progress.
func (w Stopwatch) IsRunning() bool {
	return w.running
}

// Start begins a measurement at now.
func (w Stopwatch) Start(now time.Time) (Stopwatch, error) {
	if w.running {
		return w, ErrAlreadyRunning
	}
	return Running(now), nil
}

// Stop ends the measurement and returns the elapsed time.
func (w Stopwatch) Stop(now time.Time) (Stopwatch, time.Duration, error) {
	if !w.running {
		return w, 0, ErrNotRunning
	}
	return Stopwatch{}, w.Elapsed(now), nil
}

// Elapsed returns now minus the start instant, or zero when idle.
// A clock that went backwards yields zero.
func (w Stopwatch) Elapsed(now time.Time) time.Duration {
	if !w.running {
		return 0
	}
	d := now.Sub(w.since)
	if d < 0 {
		return 0
	}
	return d
}

// WholeSeconds truncates d to whole seconds, as shown while running.
func WholeSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// RoundedSeconds rounds d to hundredths of a second, as reported on stop.
func RoundedSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// FormatSeconds renders RoundedSeconds with two decimals.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", RoundedSeconds(d))
}
