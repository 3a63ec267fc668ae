package core

// Scheduler is the command scheduler consumed by the orchestrator.
//
// Run advances every scheduled command by one tick and must recover failures
// of scheduled work itself. CancelAll interrupts every scheduled command.
type Scheduler interface {
	Run()
	CancelAll()
	Schedule(cmds ...Command)
	Cancel(cmds ...Command)
	IsScheduled(cmd Command) bool
}

// Selector yields the operator's autonomous choice. Selected returns nil when
// nothing was chosen.
type Selector interface {
	Selected() Command
}

// SelectorFunc adapts a function into a Selector.
type SelectorFunc func() Command

// Selected implements Selector.
func (f SelectorFunc) Selected() Command { return f() }
