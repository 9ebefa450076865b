package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/khangtapcode/TerminalTodo/internal/stopwatch"
)

const (
	promptAction = "What do you want to do?"
	promptAdd    = "Enter the description for the new task:"
	promptToggle = "Which task do you want to toggle?"
	promptDelete = "Which task do you want to DELETE?"
	promptKey    = "Press any key to continue..."
	msgStarted   = "Stopwatch started!"
	msgStopped   = "Stopwatch stopped! Elapsed time: %s seconds."
	msgFarewell  = "Goodbye!"
)

// Options tunes a Runner.
type Options struct {
	// StartPause is how long the loop waits after starting the stopwatch.
	// Zero skips the pause.
	StartPause time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Runner drives the interactive loop over a UI.
type Runner struct {
	ui         UI
	startPause time.Duration
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewRunner returns a Runner with defaults filled in.
func NewRunner(ui UI, opts Options) *Runner {
	r := &Runner{
		ui:         ui,
		startPause: opts.StartPause,
		now:        opts.Now,
		sleep:      opts.Sleep,
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.sleep == nil {
		r.sleep = sleepContext
	}
	return r
}

// Run loops until the user exits or interrupts, and returns the final state.
// Interrupts and a cancelled context end the session the same way exit does.
func (r *Runner) Run(ctx context.Context, s State) (State, error) {
	for {
		next, quit, err := r.step(ctx, s)
		s = next

		switch {
		case err == nil && !quit:
			continue
		case err == nil, errors.Is(err, ErrInterrupted), ctx.Err() != nil:
			total, done, _ := s.Tasks.Stats()
			log.Printf("session ended: tasks=%d done=%d", total, done)
			if ferr := r.ui.Farewell(msgFarewell); ferr != nil {
				return s, ferr
			}
			return s, nil
		default:
			return s, err
		}
	}
}

// step runs one iteration: render, choose, dispatch.
func (r *Runner) step(ctx context.Context, s State) (State, bool, error) {
	if err := r.ui.Clear(); err != nil {
		log.Printf("clear screen: %v", err)
	}
	if err := r.ui.Render(s, r.now()); err != nil {
		return s, false, fmt.Errorf("render: %w", err)
	}

	menu := Menu(s)
	choice, err := r.ui.Select(ctx, promptAction, Labels(menu), ToneNormal)
	if errors.Is(err, ErrCancelled) {
		return s, false, nil
	}
	if err != nil {
		return s, false, err
	}
	if choice < 0 || choice >= len(menu) {
		return s, false, fmt.Errorf("menu choice %d out of range", choice)
	}

	action := menu[choice]
	ev, err := r.resolve(ctx, s, action)
	if errors.Is(err, ErrCancelled) {
		log.Printf("%s cancelled", action)
		return s, false, nil
	}
	if err != nil {
		return s, false, err
	}

	next, out, err := Reduce(s, ev)
	if err != nil {
		log.Printf("ignored %s: %v", action, err)
		return s, false, nil
	}
	if out.Changed {
		logTransition(action, ev, next)
	}

	return next, out.Quit, r.effects(ctx, action, out)
}

// resolve turns a menu action into an event, asking follow-up questions.
func (r *Runner) resolve(ctx context.Context, s State, action Action) (Event, error) {
	switch action {
	case ActionAdd:
		text, err := r.ui.Ask(ctx, promptAdd)
		if err != nil {
			return nil, err
		}
		return AddTask{Description: text}, nil

	case ActionToggle:
		id, err := r.pickTask(ctx, s, promptToggle, ToneNormal)
		if err != nil {
			return nil, err
		}
		return ToggleTask{ID: id}, nil

	case ActionDelete:
		id, err := r.pickTask(ctx, s, promptDelete, ToneDanger)
		if err != nil {
			return nil, err
		}
		return DeleteTask{ID: id}, nil

	case ActionStartStopwatch:
		return StartStopwatch{At: r.now()}, nil

	case ActionStopStopwatch:
		return StopStopwatch{At: r.now()}, nil

	case ActionExit:
		return Quit{}, nil

	default:
		return nil, fmt.Errorf("unknown action %s", action)
	}
}

// pickTask shows the task descriptions and maps the answer back to an ID,
// so duplicate descriptions still select exactly one task.
func (r *Runner) pickTask(ctx context.Context, s State, prompt string, tone Tone) (uuid.UUID, error) {
	list := s.Tasks.List()
	choice, err := r.ui.Select(ctx, prompt, s.Tasks.Descriptions(), tone)
	if err != nil {
		return uuid.Nil, err
	}
	if choice < 0 || choice >= len(list) {
		return uuid.Nil, fmt.Errorf("task choice %d out of range", choice)
	}
	return list[choice].ID, nil
}

func logTransition(action Action, ev Event, next State) {
	switch ev := ev.(type) {
	case ToggleTask:
		if task, ok := next.Tasks.Find(ev.ID); ok {
			log.Printf("%s: %q is now %s", action, task.Description, task.Status)
		}
	case StartStopwatch:
		log.Printf("%s: since %s", action, next.Stopwatch.Status().Since.Format(time.TimeOnly))
	default:
		log.Printf("%s: tasks=%d running=%t", action, next.Tasks.Len(), next.Stopwatch.IsRunning())
	}
}

// effects performs the UI follow-ups of a completed transition.
func (r *Runner) effects(ctx context.Context, action Action, out Outcome) error {
	switch action {
	case ActionStartStopwatch:
		if err := r.ui.Notify(msgStarted); err != nil {
			return err
		}
		return r.sleep(ctx, r.startPause)

	case ActionStopStopwatch:
		if err := r.ui.Notify(fmt.Sprintf(msgStopped, stopwatch.FormatSeconds(out.Elapsed))); err != nil {
			return err
		}
		return r.ui.WaitKey(ctx, promptKey)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
