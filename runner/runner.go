package runner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/logging"
)

// DefaultPeriod is the loop period used when Options.Period is not set.
const DefaultPeriod = 20 * time.Millisecond

// ErrAlreadyRunning is returned by Run when the runner is already running.
var ErrAlreadyRunning = errors.New("runner: already running")

// Host is the robot side of the loop. *robot.Robot implements it.
type Host interface {
	Enter(mode core.Mode) error
	OnTick()
}

// Options holds configuration overrides passed to New().
type Options struct {
	// Period between ticks. Defaults to DefaultPeriod.
	Period time.Duration
	// ModeSource reports the mode the host wants. Defaults to always Disabled.
	ModeSource func() core.Mode
	// Ticks replaces the internal ticker. Each receive triggers one step.
	Ticks <-chan time.Time
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// Runner calls a Host's hooks from a single goroutine.
type Runner struct {
	host       Host
	period     time.Duration
	modeSource func() core.Mode
	ticks      <-chan time.Time
	logger     logging.Logger

	mu      sync.Mutex
	running bool
	entered bool
	mode    core.Mode
	count   atomic.Uint64
}

// New constructs a Runner for host.
func New(host Host, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Period:     DefaultPeriod,
		ModeSource: func() core.Mode { return core.ModeDisabled },
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Period <= 0 {
		opts.Period = DefaultPeriod
	}
	if opts.ModeSource == nil {
		opts.ModeSource = func() core.Mode { return core.ModeDisabled }
	}

	return &Runner{
		host:       host,
		period:     opts.Period,
		modeSource: opts.ModeSource,
		ticks:      opts.Ticks,
		logger:     logging.OrNoOp(opts.Logger),
		mode:       core.ModeDisabled,
	}
}

// Run steps the host once per period until ctx is done, then enters
// Disabled. It returns nil on cancellation.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.running = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	ticks := r.ticks
	if ticks == nil {
		ticker := time.NewTicker(r.period)
		defer ticker.Stop()
		ticks = ticker.C
	}

	r.logger.Info("runner.start", "period", r.period)
	for {
		select {
		case <-ctx.Done():
			r.shutdown()
			return nil
		case _, ok := <-ticks:
			if !ok {
				r.shutdown()
				return nil
			}
			r.Step()
		}
	}
}

// Step performs one loop iteration: it enters the source's mode if it
// changed and then ticks the host.
func (r *Runner) Step() {
	start := time.Now()

	want := r.modeSource()
	if !r.entered || want != r.mode {
		r.enter(want)
	}
	r.host.OnTick()
	n := r.count.Add(1)

	if elapsed := time.Since(start); elapsed > r.period {
		r.logger.Warn("runner.loop.overrun", "tick", n, "elapsed", elapsed, "period", r.period)
	}
}

func (r *Runner) enter(mode core.Mode) {
	if err := r.host.Enter(mode); err != nil {
		r.logger.Error("runner.mode.enter_failed", "mode", mode.String(), "error", err)
		return
	}
	r.mode = mode
	r.entered = true
}

func (r *Runner) shutdown() {
	if !r.entered || r.mode != core.ModeDisabled {
		r.enter(core.ModeDisabled)
	}
	r.logger.Info("runner.stop", "ticks", r.count.Load())
}

// Ticks returns the number of completed steps.
func (r *Runner) Ticks() uint64 { return r.count.Load() }

// Mode returns the mode the host was last entered into. It is not
// synchronized with Run; read it after Run returns.
func (r *Runner) Mode() core.Mode { return r.mode }
