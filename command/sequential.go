package command

import "github.com/chopshop166/commandrobot/core"

// SequentialGroup runs child commands one after another.
//
// Each child is initialized when the previous one finishes, so a routine such
// as "drive out, turn, score" is expressed as a single schedulable command.
// The group requires the union of its children's subsystems for its whole
// lifetime.
//
// Key features:
//   - Ordered execution, one child per tick at most
//   - A child that finishes immediately is ended and the next one initialized
//     on the same tick
//   - Interruption ends only the child that is currently running
type SequentialGroup struct {
	Base
	children []core.Command
	current  int
}

// Sequential creates a new sequential group.
//
// Parameters:
//   - name: Human-readable name for the group
//   - children: Commands to run in order
//
// Returns a group that finishes once the last child finishes. An empty group
// finishes immediately.
func Sequential(name string, children ...core.Command) *SequentialGroup {
	return &SequentialGroup{
		Base:     NewBase(name, unionRequirements(children)...),
		children: children,
		current:  -1,
	}
}

// Initialize starts the first child.
func (s *SequentialGroup) Initialize() {
	s.current = 0
	if len(s.children) > 0 {
		s.children[0].Initialize()
	}
}

// Execute advances the running child and moves to the next one when it
// finishes.
func (s *SequentialGroup) Execute() {
	if s.current < 0 || s.current >= len(s.children) {
		return
	}
	child := s.children[s.current]
	child.Execute()
	if !child.IsFinished() {
		return
	}
	child.End(false)
	s.current++
	if s.current < len(s.children) {
		s.children[s.current].Initialize()
	}
}

// IsFinished reports whether every child has finished.
func (s *SequentialGroup) IsFinished() bool {
	return s.current >= len(s.children)
}

// End interrupts the running child when the group is interrupted.
func (s *SequentialGroup) End(interrupted bool) {
	if interrupted && s.current >= 0 && s.current < len(s.children) {
		s.children[s.current].End(true)
	}
	s.current = -1
}

// Current returns the index of the running child, or -1 when idle.
func (s *SequentialGroup) Current() int { return s.current }
