package command

import (
	"fmt"

	"github.com/chopshop166/commandrobot/core"
)

// Base bundles the identity and requirement helpers shared by all commands.
// Embed it in a concrete command and override the lifecycle methods you need;
// the defaults do nothing and never finish.
type Base struct {
	name         string
	requirements []core.Subsystem
}

// NewBase constructs a Base with the given name and requirements.
func NewBase(name string, requirements ...core.Subsystem) Base {
	if name == "" {
		name = "Command"
	}
	return Base{name: name, requirements: requirements}
}

// Name returns the human-readable name for this command.
func (b *Base) Name() string { return b.name }

// SetName renames the command.
func (b *Base) SetName(name string) { b.name = name }

// Requirements returns the subsystems this command needs exclusively.
func (b *Base) Requirements() []core.Subsystem {
	out := make([]core.Subsystem, len(b.requirements))
	copy(out, b.requirements)
	return out
}

// AddRequirements appends subsystems to the requirement set, ignoring duplicates.
func (b *Base) AddRequirements(subsystems ...core.Subsystem) {
	for _, s := range subsystems {
		if !containsSubsystem(b.requirements, s) {
			b.requirements = append(b.requirements, s)
		}
	}
}

// Initialize does nothing by default.
func (b *Base) Initialize() {}

// Execute does nothing by default.
func (b *Base) Execute() {}

// IsFinished returns false by default.
func (b *Base) IsFinished() bool { return false }

// End does nothing by default.
func (b *Base) End(bool) {}

// String implements fmt.Stringer.
func (b *Base) String() string { return fmt.Sprintf("Command(%s)", b.name) }

func containsSubsystem(list []core.Subsystem, s core.Subsystem) bool {
	for _, existing := range list {
		if existing == s {
			return true
		}
	}
	return false
}

// unionRequirements collects the requirements of every child, in order,
// without duplicates.
func unionRequirements(children []core.Command) []core.Subsystem {
	var out []core.Subsystem
	for _, c := range children {
		for _, s := range core.RequirementsOf(c) {
			if !containsSubsystem(out, s) {
				out = append(out, s)
			}
		}
	}
	return out
}
