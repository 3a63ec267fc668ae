package testutil

import "github.com/chopshop166/commandrobot/core"

// Command is a scripted command that finishes after FinishAfter executions
// (never, when FinishAfter is zero) and records its lifecycle.
type Command struct {
	CommandName string
	FinishAfter int
	Requires    []core.Subsystem
	Initialized int
	Executed    int
	Ended       int
	Interrupted bool
	PanicOnExec any
}

// NewCommand creates a command that runs until interrupted.
func NewCommand(name string) *Command { return &Command{CommandName: name} }

// Name implements core.Command.
func (c *Command) Name() string { return c.CommandName }

// Initialize implements core.Command.
func (c *Command) Initialize() { c.Initialized++ }

// Execute implements core.Command.
func (c *Command) Execute() {
	c.Executed++
	if c.PanicOnExec != nil {
		panic(c.PanicOnExec)
	}
}

// IsFinished implements core.Command.
func (c *Command) IsFinished() bool {
	return c.FinishAfter > 0 && c.Executed >= c.FinishAfter
}

// End implements core.Command.
func (c *Command) End(interrupted bool) {
	c.Ended++
	c.Interrupted = interrupted
}

// Requirements implements core.Requirer.
func (c *Command) Requirements() []core.Subsystem { return c.Requires }

// Subsystem counts Periodic calls.
type Subsystem struct {
	SubsystemName string
	Ticks         int
}

// Name implements core.Subsystem.
func (s *Subsystem) Name() string { return s.SubsystemName }

// Periodic implements core.Subsystem.
func (s *Subsystem) Periodic() { s.Ticks++ }
