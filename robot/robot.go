package robot

import (
	"fmt"
	"time"

	"github.com/chopshop166/commandrobot/buildinfo"
	"github.com/chopshop166/commandrobot/capability"
	"github.com/chopshop166/commandrobot/chooser"
	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/logging"
	"github.com/chopshop166/commandrobot/scheduler"
)

// Options configures a Robot.
type Options struct {
	// Scheduler runs the commands. Defaults to a scheduler.Scheduler sharing
	// the robot's logger.
	Scheduler core.Scheduler

	// Chooser receives the autonomous routines found at Init. Defaults to an
	// empty chooser.Chooser.
	Chooser *chooser.Chooser

	// Selector resolves the autonomous selection. Defaults to Chooser.
	Selector core.Selector

	// AutoCommand, when set, replaces the selector as the source of the
	// autonomous command.
	AutoCommand func() core.Command

	// DefaultAuto names a routine that becomes the default after the
	// routines are registered, overriding any declared default.
	DefaultAuto string

	// Registry holds the capability indices. Defaults to a new registry
	// sharing the robot's logger. Members registered on it before Init are
	// included.
	Registry *capability.Registry

	// BuildInfo supplies the build data logged at Init. Defaults to
	// buildinfo.Read.
	BuildInfo func() buildinfo.Data

	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// Robot orchestrates mode transitions for one composed robot.
type Robot struct {
	root      any
	registry  *capability.Registry
	scheduler core.Scheduler
	adapter   *SchedulerAdapter
	chooser   *chooser.Chooser
	selector  core.Selector
	logger    logging.Logger

	autoOverride func() core.Command
	defaultAuto  string
	buildInfo    func() buildinfo.Data

	initialized bool
	mode        core.Mode
	routines    []core.Routine
	activeAuto  core.Command
	autoSession string
}

type transitionLogger interface {
	LogTransition(from, to string, dur time.Duration)
}

type timerLogger interface {
	StartTimer(op string) func()
}

// New creates a Robot for root. root should be a pointer to the composed
// robot struct so that pointer-receiver capabilities on its fields are found.
func New(root any, optFns ...func(o *Options)) *Robot {
	opts := Options{
		Logger:    logging.NoOpLogger{},
		BuildInfo: buildinfo.Read,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	logger := logging.OrNoOp(opts.Logger)
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.New(func(o *scheduler.Options) { o.Logger = logger })
	}
	if opts.Chooser == nil {
		opts.Chooser = chooser.New()
	}
	if opts.Selector == nil {
		opts.Selector = opts.Chooser
	}
	if opts.Registry == nil {
		opts.Registry = capability.NewRegistry(func(o *capability.Options) { o.Logger = logger })
	}
	if opts.BuildInfo == nil {
		opts.BuildInfo = buildinfo.Read
	}

	return &Robot{
		root:         root,
		registry:     opts.Registry,
		scheduler:    opts.Scheduler,
		adapter:      NewSchedulerAdapter(opts.Scheduler),
		chooser:      opts.Chooser,
		selector:     opts.Selector,
		logger:       logger,
		autoOverride: opts.AutoCommand,
		defaultAuto:  opts.DefaultAuto,
		buildInfo:    opts.BuildInfo,
		mode:         core.ModeDisabled,
	}
}

// Init performs one-time startup. Later calls do nothing.
func (r *Robot) Init() {
	if r.initialized {
		return
	}
	r.initialized = true
	if tl, ok := r.logger.(timerLogger); ok {
		defer tl.StartTimer("robot.init")()
	}

	r.logger.Info("robot.build", r.buildInfo().Attrs()...)

	hooks := runInitHooks(r.root)
	r.logger.Debug("robot.init.hooks", "ran", hooks)

	r.registry.Build(r.root)
	r.populateAutonomous()

	r.logger.Info("robot.init",
		"resettable", r.registry.Resettables().Len(),
		"safe_state", r.registry.SafeStateables().Len(),
		"autonomous", len(r.routines),
	)
}

func (r *Robot) populateAutonomous() {
	r.routines = r.registry.Routines()
	for _, routine := range r.routines {
		if !routine.Default {
			r.chooser.AddOption(routine.Name, routine.Command)
			continue
		}
		previous := r.chooser.Default()
		if r.chooser.SetDefaultOption(routine.Name, routine.Command) {
			r.logger.Warn("robot.autonomous.ambiguous_default",
				"error", core.ErrAmbiguousDefault,
				"replaced", previous,
				"default", routine.Name,
			)
		}
	}

	if r.defaultAuto == "" {
		return
	}
	cmd, ok := r.chooser.Lookup(r.defaultAuto)
	if !ok {
		r.logger.Warn("robot.autonomous.unknown_default", "name", r.defaultAuto, "options", r.chooser.Options())
		return
	}
	r.chooser.SetDefaultOption(r.defaultAuto, cmd)
	r.logger.Info("robot.autonomous.default_override", "default", r.defaultAuto)
}

// Enter dispatches to the hook for mode and records it as current. Entering
// the current mode again runs its hook again.
func (r *Robot) Enter(mode core.Mode) error {
	start := time.Now()
	from := r.mode

	switch mode {
	case core.ModeDisabled:
		r.OnDisabledEnter()
	case core.ModeAutonomous:
		r.OnAutonomousEnter()
	case core.ModeTeleop:
		r.OnTeleopEnter()
	case core.ModeTest:
		r.OnTestEnter()
	default:
		return fmt.Errorf("robot: unknown mode %s", mode)
	}

	if tl, ok := r.logger.(transitionLogger); ok {
		tl.LogTransition(from.String(), mode.String(), time.Since(start))
	} else {
		r.logger.Info("robot.mode.enter", "from", from.String(), "to", mode.String())
	}
	return nil
}

// Mode returns the mode most recently entered.
func (r *Robot) Mode() core.Mode { return r.mode }

// OnDisabledEnter cancels all scheduled work, then safe-states and resets
// every member. Both sweeps always run to completion.
func (r *Robot) OnDisabledEnter() (safe, reset capability.SweepReport) {
	r.Init()
	r.mode = core.ModeDisabled

	r.adapter.CancelAll()
	r.clearAutonomous()

	safe = r.registry.SafeStateAll()
	reset = r.registry.ResetAll()
	return safe, reset
}

// OnAutonomousEnter schedules the autonomous selection and returns it. A nil
// selection is not an error: nothing is scheduled.
func (r *Robot) OnAutonomousEnter() core.Command {
	r.Init()
	r.mode = core.ModeAutonomous
	r.cancelAutonomous()

	cmd := r.AutoCommand()
	if cmd == nil {
		r.logger.Info("robot.autonomous.no_selection")
		return nil
	}

	r.autoSession = core.NewID()
	r.activeAuto = cmd
	r.scheduler.Schedule(cmd)
	r.logger.Info("robot.autonomous.start", "routine", cmd.Name(), "session_id", r.autoSession)
	return cmd
}

// OnTeleopEnter cancels the autonomous selection if it is still scheduled.
func (r *Robot) OnTeleopEnter() {
	r.Init()
	r.mode = core.ModeTeleop
	r.cancelAutonomous()
}

// OnTestEnter cancels all scheduled work.
func (r *Robot) OnTestEnter() {
	r.Init()
	r.mode = core.ModeTest
	r.adapter.CancelAll()
	r.clearAutonomous()
}

// OnTick runs one scheduler iteration.
func (r *Robot) OnTick() {
	r.adapter.Tick()
}

// AutoCommand returns the command the next autonomous session will run.
func (r *Robot) AutoCommand() core.Command {
	if r.autoOverride != nil {
		return r.autoOverride()
	}
	return r.selector.Selected()
}

// ActiveAutonomous returns the command started by the current autonomous
// session, or nil outside of one.
func (r *Robot) ActiveAutonomous() core.Command { return r.activeAuto }

// AutonomousSession returns the ID of the current autonomous session, or ""
// outside of one.
func (r *Robot) AutonomousSession() string { return r.autoSession }

// Routines returns the autonomous routines registered at Init.
func (r *Robot) Routines() []core.Routine {
	out := make([]core.Routine, len(r.routines))
	copy(out, r.routines)
	return out
}

// Chooser returns the autonomous chooser.
func (r *Robot) Chooser() *chooser.Chooser { return r.chooser }

// Registry returns the capability registry.
func (r *Robot) Registry() *capability.Registry { return r.registry }

// Scheduler returns the scheduler the robot drives.
func (r *Robot) Scheduler() core.Scheduler { return r.scheduler }

// ResetAll resets every resettable member.
func (r *Robot) ResetAll() capability.SweepReport {
	r.Init()
	return r.registry.ResetAll()
}

// SafeStateAll puts every safe-stateable member into its safe state.
func (r *Robot) SafeStateAll() capability.SweepReport {
	r.Init()
	return r.registry.SafeStateAll()
}

func (r *Robot) cancelAutonomous() {
	if r.activeAuto != nil && r.scheduler.IsScheduled(r.activeAuto) {
		r.scheduler.Cancel(r.activeAuto)
		r.logger.Info("robot.autonomous.cancelled", "routine", r.activeAuto.Name(), "session_id", r.autoSession)
	}
	r.clearAutonomous()
}

func (r *Robot) clearAutonomous() {
	r.activeAuto = nil
	r.autoSession = ""
}
