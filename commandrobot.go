// Package commandrobot wires the lifecycle core of a command-based robot:
// configuration, logging, the command scheduler, the mode orchestrator and
// the host loop. Most programs interact with this package by:
//  1. Declaring a struct whose fields are the robot's components
//  2. Creating a CommandRobot for it via New()
//  3. Calling Run with a mode source supplied by the host
//
// The façade delegates mode handling to robot.Robot and periodic driving to
// runner.Runner. Everything it builds is reachable through accessors, so a
// host with its own loop can call the robot's hooks directly instead of Run.
package commandrobot

import (
	"context"
	"fmt"

	"github.com/chopshop166/commandrobot/config"
	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/logging"
	"github.com/chopshop166/commandrobot/modifier"
	"github.com/chopshop166/commandrobot/robot"
	"github.com/chopshop166/commandrobot/runner"
	"github.com/chopshop166/commandrobot/scheduler"
)

// Options configures the CommandRobot instance.
type Options struct {
	// Config is used as is when set.
	Config *config.Config

	// ConfigPath is loaded when Config is nil. A missing file yields the
	// defaults; an empty path skips loading.
	ConfigPath string

	// ModeSource reports the mode the host wants on every loop period.
	// Defaults to always Disabled.
	ModeSource func() core.Mode

	// Logger defaults to a logger built from the configuration.
	Logger logging.Logger
}

// CommandRobot is the high-level façade aggregating the orchestrator and its
// collaborators.
type CommandRobot struct {
	config    *config.Config
	logger    logging.Logger
	scheduler *scheduler.Scheduler
	robot     *robot.Robot
	runner    *runner.Runner
}

// New creates a CommandRobot for root, a pointer to the composed robot
// struct. root may also use Scheduler() in its init hooks to register
// subsystems and default commands.
func New(root any, optFns ...func(o *Options)) (*CommandRobot, error) {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
		if opts.ConfigPath != "" {
			loaded, err := config.Load(opts.ConfigPath)
			if err != nil {
				return nil, fmt.Errorf("commandrobot: %w", err)
			}
			cfg = loaded
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = cfg.Logger(nil).WithComponent("commandrobot")
	}

	s := scheduler.New(func(o *scheduler.Options) {
		o.Logger = logger
	})

	r := robot.New(root, func(o *robot.Options) {
		o.Scheduler = s
		o.Logger = logger
		o.DefaultAuto = cfg.Autonomous.Default
	})

	run := runner.New(r, func(o *runner.Options) {
		o.Period = cfg.Loop.Period
		o.ModeSource = opts.ModeSource
		o.Logger = logger
	})

	return &CommandRobot{
		config:    cfg,
		logger:    logger,
		scheduler: s,
		robot:     r,
		runner:    run,
	}, nil
}

// Run initializes the robot and drives it until ctx is done.
func (c *CommandRobot) Run(ctx context.Context) error {
	c.robot.Init()
	return c.runner.Run(ctx)
}

// Robot returns the mode orchestrator.
func (c *CommandRobot) Robot() *robot.Robot { return c.robot }

// Scheduler returns the command scheduler.
func (c *CommandRobot) Scheduler() *scheduler.Scheduler { return c.scheduler }

// Runner returns the host loop driver.
func (c *CommandRobot) Runner() *runner.Runner { return c.runner }

// Config returns the effective configuration.
func (c *CommandRobot) Config() *config.Config { return c.config }

// Logger returns the shared logger.
func (c *CommandRobot) Logger() logging.Logger { return c.logger }

// Pipeline builds the configured modifier pipeline for an actuator.
func (c *CommandRobot) Pipeline(actuator string) (*modifier.Pipeline, error) {
	return c.config.Pipeline(actuator)
}
