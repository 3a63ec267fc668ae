package robot

import "github.com/chopshop166/commandrobot/core"

// SchedulerAdapter is the orchestrator's only way to drive scheduled work
// periodically. It forwards to a core.Scheduler and holds no state.
type SchedulerAdapter struct {
	scheduler core.Scheduler
}

// NewSchedulerAdapter wraps s.
func NewSchedulerAdapter(s core.Scheduler) *SchedulerAdapter {
	return &SchedulerAdapter{scheduler: s}
}

// Tick runs one scheduler iteration.
func (a *SchedulerAdapter) Tick() { a.scheduler.Run() }

// CancelAll cancels every scheduled command.
func (a *SchedulerAdapter) CancelAll() { a.scheduler.CancelAll() }
