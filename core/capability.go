package core

// Resettable is implemented by components that can return to their initial
// state (zero an encoder, clear an integrator). The orchestrator resets every
// discovered Resettable on entry to Disabled.
type Resettable interface {
	Reset() error
}

// SafeStateable is implemented by components that have a known safe state
// (motor stopped, solenoid retracted). The orchestrator safe-states every
// discovered SafeStateable on entry to Disabled, before resetting.
type SafeStateable interface {
	SafeState() error
}

// AutonomousCandidate is implemented by members that offer a routine for the
// Autonomous mode session.
type AutonomousCandidate interface {
	Routine() Routine
}

// AutoOptions is the registration metadata of an autonomous routine.
type AutoOptions struct {
	// Name is the display name. Empty means "use the command's own name".
	Name string
	// Default marks the routine as the initial selection.
	Default bool
}

// Routine is a (name, command, default) triple offered to the autonomous selector.
type Routine struct {
	Name    string
	Command Command
	Default bool
}

// DisplayName returns the explicit name when set, otherwise the command's own name.
func (r Routine) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Command == nil {
		return ""
	}
	return r.Command.Name()
}

// AutoCommand adapts a Command plus registration metadata into an
// AutonomousCandidate. Declare a field of this type on the robot to offer the
// command in the autonomous chooser.
type AutoCommand struct {
	Command
	opts AutoOptions
}

// Auto wraps cmd as an autonomous candidate.
func Auto(cmd Command, opts AutoOptions) *AutoCommand {
	return &AutoCommand{Command: cmd, opts: opts}
}

// Routine implements AutonomousCandidate.
func (a *AutoCommand) Routine() Routine {
	return Routine{Name: a.opts.Name, Command: a.Command, Default: a.opts.Default}
}
