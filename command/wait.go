package command

import "time"

// Clock abstracts time so Wait can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// WaitCommand finishes once its duration has elapsed since it was initialized.
type WaitCommand struct {
	Base
	duration time.Duration
	clock    Clock
	started  time.Time
}

// WaitOption configures a WaitCommand.
type WaitOption func(*WaitCommand)

// WithClock replaces the wall clock.
func WithClock(c Clock) WaitOption {
	return func(w *WaitCommand) {
		if c != nil {
			w.clock = c
		}
	}
}

// Wait returns a command that finishes after d.
func Wait(d time.Duration, opts ...WaitOption) *WaitCommand {
	w := &WaitCommand{
		Base:     NewBase("Wait(" + d.String() + ")"),
		duration: d,
		clock:    systemClock{},
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Initialize records the start time.
func (w *WaitCommand) Initialize() { w.started = w.clock.Now() }

// IsFinished reports whether the duration has elapsed.
func (w *WaitCommand) IsFinished() bool {
	return w.clock.Now().Sub(w.started) >= w.duration
}

// Elapsed returns the time since Initialize.
func (w *WaitCommand) Elapsed() time.Duration {
	return w.clock.Now().Sub(w.started)
}
