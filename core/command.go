package core

// Command is the unit of work driven by a Scheduler.
//
// The scheduler calls Initialize once when the command starts, then Execute on
// every tick until IsFinished reports true or the command is cancelled. End is
// called exactly once with interrupted=true when the command was cancelled (or
// failed) and interrupted=false when it finished on its own.
//
// Implementations must not block: every method runs on the control loop.
type Command interface {
	Name() string
	Initialize()
	Execute()
	IsFinished() bool
	End(interrupted bool)
}

// Subsystem is a shared resource (a drivetrain, an arm) that at most one
// command may use at a time. Periodic is called once per scheduler tick.
type Subsystem interface {
	Name() string
	Periodic()
}

// Requirer is implemented by commands that need exclusive use of subsystems.
// Scheduling a command whose requirements overlap a running command interrupts
// the running one.
type Requirer interface {
	Requirements() []Subsystem
}

// RequirementsOf returns the subsystems a command requires, or nil when the
// command does not implement Requirer.
func RequirementsOf(cmd Command) []Subsystem {
	if r, ok := cmd.(Requirer); ok {
		return r.Requirements()
	}
	return nil
}
