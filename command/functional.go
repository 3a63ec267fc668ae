package command

import "github.com/chopshop166/commandrobot/core"

var (
	_ core.Command  = (*Functional)(nil)
	_ core.Requirer = (*Functional)(nil)
)

// Functional is a command whose lifecycle is supplied as functions. Any nil
// hook is skipped; a nil isFinished never finishes.
type Functional struct {
	Base
	onInit     func()
	onExecute  func()
	isFinished func() bool
	onEnd      func(interrupted bool)
}

// NewFunctional assembles a command from its four lifecycle hooks.
func NewFunctional(name string, onInit, onExecute func(), isFinished func() bool, onEnd func(bool), requirements ...core.Subsystem) *Functional {
	return &Functional{
		Base:       NewBase(name, requirements...),
		onInit:     onInit,
		onExecute:  onExecute,
		isFinished: isFinished,
		onEnd:      onEnd,
	}
}

// Initialize calls the init hook.
func (f *Functional) Initialize() {
	if f.onInit != nil {
		f.onInit()
	}
}

// Execute calls the execute hook.
func (f *Functional) Execute() {
	if f.onExecute != nil {
		f.onExecute()
	}
}

// IsFinished calls the finish predicate.
func (f *Functional) IsFinished() bool {
	return f.isFinished != nil && f.isFinished()
}

// End calls the end hook.
func (f *Functional) End(interrupted bool) {
	if f.onEnd != nil {
		f.onEnd(interrupted)
	}
}

// Instant runs fn once on initialization and finishes immediately.
func Instant(name string, fn func(), requirements ...core.Subsystem) *Functional {
	return NewFunctional(name, fn, nil, func() bool { return true }, nil, requirements...)
}

// Run calls fn on every tick until interrupted.
func Run(name string, fn func(), requirements ...core.Subsystem) *Functional {
	return NewFunctional(name, nil, fn, nil, nil, requirements...)
}

// StartEnd calls onStart when scheduled and onEnd when interrupted. It never
// finishes on its own.
func StartEnd(name string, onStart, onEnd func(), requirements ...core.Subsystem) *Functional {
	return NewFunctional(name, onStart, nil, nil, func(bool) {
		if onEnd != nil {
			onEnd()
		}
	}, requirements...)
}

// WaitUntil finishes on the first tick cond reports true.
func WaitUntil(name string, cond func() bool) *Functional {
	return NewFunctional(name, nil, nil, cond, nil)
}

// None is a command that does nothing and finishes immediately. It is a
// convenient "do nothing" autonomous routine.
func None() *Functional {
	return Instant("None", nil)
}
