package command

import (
	"fmt"

	"github.com/chopshop166/commandrobot/core"
)

// RepeatCommand runs a child command repeatedly, reinitializing it each time
// it finishes.
//
// The number of iterations is unbounded unless WithMaxIterations is given; an
// unbounded repeat only ends when interrupted.
type RepeatCommand struct {
	Base
	child         core.Command
	maxIterations int
	iterations    int
	childRunning  bool
}

// RepeatOption defines a configuration function for customizing RepeatCommand behavior.
type RepeatOption func(*RepeatCommand)

// WithMaxIterations stops the repeat after n completed iterations. Zero or a
// negative n means no limit.
func WithMaxIterations(n int) RepeatOption {
	return func(r *RepeatCommand) { r.maxIterations = n }
}

// Repeat wraps child so it restarts every time it finishes.
func Repeat(child core.Command, opts ...RepeatOption) *RepeatCommand {
	r := &RepeatCommand{
		Base:  NewBase(fmt.Sprintf("Repeat(%s)", child.Name()), core.RequirementsOf(child)...),
		child: child,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Initialize starts the first iteration.
func (r *RepeatCommand) Initialize() {
	r.iterations = 0
	r.child.Initialize()
	r.childRunning = true
}

// Execute advances the child and restarts it when it finishes.
func (r *RepeatCommand) Execute() {
	if !r.childRunning {
		r.child.Initialize()
		r.childRunning = true
	}
	r.child.Execute()
	if r.child.IsFinished() {
		r.child.End(false)
		r.childRunning = false
		r.iterations++
	}
}

// IsFinished reports whether the iteration limit was reached.
func (r *RepeatCommand) IsFinished() bool {
	return r.maxIterations > 0 && r.iterations >= r.maxIterations
}

// End interrupts the child if it is mid-iteration.
func (r *RepeatCommand) End(interrupted bool) {
	if r.childRunning {
		r.child.End(interrupted)
		r.childRunning = false
	}
}

// Iterations returns the number of completed iterations.
func (r *RepeatCommand) Iterations() int { return r.iterations }
