package command

import "github.com/chopshop166/commandrobot/core"

// finishPolicy decides when a parallel group is done.
type finishPolicy int

const (
	finishAll finishPolicy = iota
	finishAny
	finishDeadline
)

// ParallelGroup runs child commands side by side on the same tick.
//
// Three variants share this type:
//   - Parallel finishes once every child has finished
//   - Race finishes as soon as any child finishes, interrupting the rest
//   - Deadline finishes when its first child (the deadline) finishes,
//     interrupting the rest
//
// Children are executed in declaration order within a tick. A child that
// finishes is ended immediately and is not executed again.
type ParallelGroup struct {
	Base
	children []core.Command
	running  []bool
	policy   finishPolicy
	done     bool
}

func newParallel(name string, policy finishPolicy, children []core.Command) *ParallelGroup {
	return &ParallelGroup{
		Base:     NewBase(name, unionRequirements(children)...),
		children: children,
		running:  make([]bool, len(children)),
		policy:   policy,
	}
}

// Parallel creates a group that finishes when all children have finished.
func Parallel(name string, children ...core.Command) *ParallelGroup {
	return newParallel(name, finishAll, children)
}

// Race creates a group that finishes when any child finishes.
func Race(name string, children ...core.Command) *ParallelGroup {
	return newParallel(name, finishAny, children)
}

// Deadline creates a group that finishes when deadline finishes. The other
// children are interrupted at that point if still running.
func Deadline(name string, deadline core.Command, others ...core.Command) *ParallelGroup {
	return newParallel(name, finishDeadline, append([]core.Command{deadline}, others...))
}

// Initialize starts every child.
func (p *ParallelGroup) Initialize() {
	p.done = false
	for i, c := range p.children {
		c.Initialize()
		p.running[i] = true
	}
}

// Execute advances every running child once.
func (p *ParallelGroup) Execute() {
	for i, c := range p.children {
		if !p.running[i] {
			continue
		}
		c.Execute()
		if !c.IsFinished() {
			continue
		}
		c.End(false)
		p.running[i] = false
		switch p.policy {
		case finishAny:
			p.done = true
		case finishDeadline:
			if i == 0 {
				p.done = true
			}
		}
	}
	if p.policy == finishAll {
		p.done = !anyTrue(p.running)
	}
}

// IsFinished applies the group's finish policy. An empty group is finished.
func (p *ParallelGroup) IsFinished() bool {
	return p.done || len(p.children) == 0
}

// End interrupts every child that is still running.
func (p *ParallelGroup) End(bool) {
	for i, c := range p.children {
		if p.running[i] {
			c.End(true)
			p.running[i] = false
		}
	}
}

func anyTrue(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
