package scheduler

import (
	"errors"
	"fmt"

	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/logging"
)

var _ core.Scheduler = (*Scheduler)(nil)

// ErrDefaultRequirement is returned by SetDefaultCommand when the default
// command does not require the subsystem it is assigned to.
var ErrDefaultRequirement = errors.New("scheduler: default command must require its subsystem")

// Options configures a Scheduler.
type Options struct {
	// Logger receives scheduling, cancellation and panic reports.
	// Defaults to a no-op logger.
	Logger logging.Logger

	// Callbacks receives lifecycle events. A fresh manager is created when nil.
	Callbacks *CallbackManager
}

// Scheduler runs commands cooperatively on the caller's goroutine.
//
// Commands are tracked by identity, so they must be comparable values
// (pointers in practice). Each scheduling of a command is assigned a run ID
// that appears in every log entry and callback for that run.
type Scheduler struct {
	logger    logging.Logger
	callbacks *CallbackManager

	runs       []*scheduledRun
	subsystems []core.Subsystem
	defaults   []defaultBinding
}

type scheduledRun struct {
	id           string
	cmd          core.Command
	requirements []core.Subsystem
}

type defaultBinding struct {
	subsystem core.Subsystem
	cmd       core.Command
}

// New creates a Scheduler with no scheduled commands.
func New(optFns ...func(o *Options)) *Scheduler {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Callbacks == nil {
		opts.Callbacks = NewCallbackManager()
	}

	return &Scheduler{
		logger:    logging.OrNoOp(opts.Logger),
		callbacks: opts.Callbacks,
	}
}

// Callbacks returns the scheduler's callback manager.
func (s *Scheduler) Callbacks() *CallbackManager { return s.callbacks }

// OnInitialize registers fn for CallbackInitialize events.
func (s *Scheduler) OnInitialize(fn func(cc *CallbackContext) error) {
	s.callbacks.RegisterCallback(NewFunctionCallback(CallbackInitialize, fn))
}

// OnExecute registers fn for CallbackExecute events.
func (s *Scheduler) OnExecute(fn func(cc *CallbackContext) error) {
	s.callbacks.RegisterCallback(NewFunctionCallback(CallbackExecute, fn))
}

// OnFinish registers fn for CallbackFinish events.
func (s *Scheduler) OnFinish(fn func(cc *CallbackContext) error) {
	s.callbacks.RegisterCallback(NewFunctionCallback(CallbackFinish, fn))
}

// OnInterrupt registers fn for CallbackInterrupt events.
func (s *Scheduler) OnInterrupt(fn func(cc *CallbackContext) error) {
	s.callbacks.RegisterCallback(NewFunctionCallback(CallbackInterrupt, fn))
}

// RegisterSubsystem adds subsystems whose Periodic method is called on every
// Run. Registering a subsystem twice has no effect.
func (s *Scheduler) RegisterSubsystem(subsystems ...core.Subsystem) {
	for _, sub := range subsystems {
		if sub != nil && !containsSubsystem(s.subsystems, sub) {
			s.subsystems = append(s.subsystems, sub)
		}
	}
}

// Subsystems returns the registered subsystems in registration order.
func (s *Scheduler) Subsystems() []core.Subsystem {
	out := make([]core.Subsystem, len(s.subsystems))
	copy(out, s.subsystems)
	return out
}

// SetDefaultCommand makes cmd run whenever sub is not required by any other
// scheduled command. The subsystem is registered if needed. A nil cmd
// removes the default.
func (s *Scheduler) SetDefaultCommand(sub core.Subsystem, cmd core.Command) error {
	if sub == nil {
		return errors.New("scheduler: subsystem is required")
	}
	if cmd != nil && !containsSubsystem(core.RequirementsOf(cmd), sub) {
		return fmt.Errorf("%w: %s does not require %s", ErrDefaultRequirement, cmd.Name(), sub.Name())
	}

	s.RegisterSubsystem(sub)
	for i, b := range s.defaults {
		if b.subsystem == sub {
			if cmd == nil {
				s.defaults = append(s.defaults[:i], s.defaults[i+1:]...)
			} else {
				s.defaults[i].cmd = cmd
			}
			return nil
		}
	}
	if cmd != nil {
		s.defaults = append(s.defaults, defaultBinding{subsystem: sub, cmd: cmd})
	}
	return nil
}

// DefaultCommand returns the default command for sub, or nil.
func (s *Scheduler) DefaultCommand(sub core.Subsystem) core.Command {
	for _, b := range s.defaults {
		if b.subsystem == sub {
			return b.cmd
		}
	}
	return nil
}

// Schedule initializes each command and adds it to the scheduled set.
// Commands already scheduled are ignored. Running commands that share a
// requirement with a new command are interrupted first.
func (s *Scheduler) Schedule(cmds ...core.Command) {
	for _, cmd := range cmds {
		s.schedule(cmd)
	}
}

func (s *Scheduler) schedule(cmd core.Command) {
	if cmd == nil {
		s.logger.Warn("scheduler.schedule.nil")
		return
	}
	if s.indexOfCommand(cmd) >= 0 {
		return
	}

	requirements := core.RequirementsOf(cmd)
	for _, holder := range s.conflicting(requirements) {
		s.logger.Debug("scheduler.command.preempted",
			"command", holder.cmd.Name(), "run_id", holder.id, "by", cmd.Name())
		s.interrupt(holder, nil)
	}

	run := &scheduledRun{id: core.NewID(), cmd: cmd, requirements: requirements}
	if err := guard(cmd.Initialize); err != nil {
		s.fail(run, "initialize", err)
		return
	}

	s.runs = append(s.runs, run)
	s.logger.Debug("scheduler.command.scheduled", "command", cmd.Name(), "run_id", run.id)
	s.fire(CallbackInitialize, run, nil)
}

// Run advances the scheduler by one tick.
func (s *Scheduler) Run() {
	for _, sub := range s.subsystems {
		if err := guard(sub.Periodic); err != nil {
			s.logger.Error("scheduler.subsystem.panic", "subsystem", sub.Name(), "error", err)
		}
	}

	for _, run := range append([]*scheduledRun(nil), s.runs...) {
		// An earlier command may have cancelled this one during this tick.
		if s.indexOfRun(run) < 0 {
			continue
		}
		s.step(run)
	}

	s.scheduleDefaults()
}

func (s *Scheduler) step(run *scheduledRun) {
	if err := guard(run.cmd.Execute); err != nil {
		s.fail(run, "execute", err)
		return
	}
	if s.indexOfRun(run) < 0 {
		return
	}
	s.fire(CallbackExecute, run, nil)

	var finished bool
	if err := guard(func() { finished = run.cmd.IsFinished() }); err != nil {
		s.fail(run, "is_finished", err)
		return
	}
	if !finished {
		return
	}

	s.remove(run)
	if err := guard(func() { run.cmd.End(false) }); err != nil {
		s.logger.Error("scheduler.command.panic",
			"phase", "end", "command", run.cmd.Name(), "run_id", run.id, "error", err)
		s.fire(CallbackInterrupt, run, err)
		return
	}
	s.logger.Debug("scheduler.command.finished", "command", run.cmd.Name(), "run_id", run.id)
	s.fire(CallbackFinish, run, nil)
}

func (s *Scheduler) scheduleDefaults() {
	for _, b := range s.defaults {
		if len(s.conflicting([]core.Subsystem{b.subsystem})) == 0 {
			s.schedule(b.cmd)
		}
	}
}

// Cancel interrupts each scheduled command. Commands not scheduled are ignored.
func (s *Scheduler) Cancel(cmds ...core.Command) {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		i := s.indexOfCommand(cmd)
		if i < 0 {
			continue
		}
		run := s.runs[i]
		s.logger.Debug("scheduler.command.cancelled", "command", cmd.Name(), "run_id", run.id)
		s.interrupt(run, nil)
	}
}

// CancelAll interrupts every scheduled command in scheduling order.
func (s *Scheduler) CancelAll() {
	for _, run := range append([]*scheduledRun(nil), s.runs...) {
		if s.indexOfRun(run) >= 0 {
			s.interrupt(run, nil)
		}
	}
	s.logger.Debug("scheduler.cancel_all")
}

// IsScheduled reports whether cmd is currently scheduled.
func (s *Scheduler) IsScheduled(cmd core.Command) bool {
	return cmd != nil && s.indexOfCommand(cmd) >= 0
}

// Scheduled returns the scheduled commands in scheduling order.
func (s *Scheduler) Scheduled() []core.Command {
	out := make([]core.Command, len(s.runs))
	for i, run := range s.runs {
		out[i] = run.cmd
	}
	return out
}

// RunID returns the run ID of a scheduled command.
func (s *Scheduler) RunID(cmd core.Command) (string, bool) {
	i := s.indexOfCommand(cmd)
	if i < 0 {
		return "", false
	}
	return s.runs[i].id, true
}

// Requiring returns the scheduled command that holds sub, or nil.
func (s *Scheduler) Requiring(sub core.Subsystem) core.Command {
	if holders := s.conflicting([]core.Subsystem{sub}); len(holders) > 0 {
		return holders[0].cmd
	}
	return nil
}

// interrupt removes run and ends it as interrupted. cause is non-nil when
// the interruption is due to a recovered panic.
func (s *Scheduler) interrupt(run *scheduledRun, cause error) {
	s.remove(run)
	if err := guard(func() { run.cmd.End(true) }); err != nil {
		s.logger.Error("scheduler.command.panic",
			"phase", "end", "command", run.cmd.Name(), "run_id", run.id, "error", err)
		if cause == nil {
			cause = err
		}
	}
	s.fire(CallbackInterrupt, run, cause)
}

func (s *Scheduler) fail(run *scheduledRun, phase string, err error) {
	s.logger.Error("scheduler.command.panic",
		"phase", phase, "command", run.cmd.Name(), "run_id", run.id, "error", err)
	s.interrupt(run, err)
}

func (s *Scheduler) fire(callbackType CallbackType, run *scheduledRun, cause error) {
	cc := &CallbackContext{RunID: run.id, Command: run.cmd, Err: cause}
	var cbErr error
	if err := guard(func() { cbErr = s.callbacks.ExecuteCallbacks(callbackType, cc) }); err != nil {
		cbErr = err
	}
	if cbErr != nil {
		s.logger.Warn("scheduler.callback.failed",
			"event", string(callbackType), "command", run.cmd.Name(), "run_id", run.id, "error", cbErr)
	}
}

func (s *Scheduler) conflicting(requirements []core.Subsystem) []*scheduledRun {
	var out []*scheduledRun
	for _, run := range s.runs {
		for _, req := range requirements {
			if containsSubsystem(run.requirements, req) {
				out = append(out, run)
				break
			}
		}
	}
	return out
}

func (s *Scheduler) remove(run *scheduledRun) {
	if i := s.indexOfRun(run); i >= 0 {
		s.runs = append(s.runs[:i], s.runs[i+1:]...)
	}
}

func (s *Scheduler) indexOfRun(run *scheduledRun) int {
	for i, r := range s.runs {
		if r == run {
			return i
		}
	}
	return -1
}

func (s *Scheduler) indexOfCommand(cmd core.Command) int {
	for i, r := range s.runs {
		if r.cmd == cmd {
			return i
		}
	}
	return -1
}

func containsSubsystem(list []core.Subsystem, sub core.Subsystem) bool {
	for _, s := range list {
		if s == sub {
			return true
		}
	}
	return false
}

// guard runs fn and converts a panic into a *core.PanicError.
func guard(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &core.PanicError{Value: v}
		}
	}()
	fn()
	return nil
}
