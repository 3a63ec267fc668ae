// Package robot implements the mode orchestrator: the lifecycle core that
// reacts to the host's mode transitions on behalf of a composed robot.
//
// A composed robot is any struct whose fields are its components. Robot scans
// it once, at Init, for members that are resettable, have a safe state, or
// offer an autonomous routine, and then applies a fixed policy on every
// transition:
//
//   - Disabled: cancel all scheduled commands, safe-state every member, reset
//     every member
//   - Autonomous: schedule the routine picked by the operator, if any
//   - Teleop: cancel the autonomous routine if it is still running
//   - Test: cancel all scheduled commands
//
// OnTick forwards to the scheduler once per control period.
//
// Example:
//
//	type MyRobot struct {
//	    Drive  *actuator.SmartMotorController
//	    Claw   *actuator.MockSolenoid
//	    Simple *core.AutoCommand
//	}
//
//	bot := &MyRobot{...}
//	r := robot.New(bot, func(o *robot.Options) {
//	    o.Logger = logger
//	})
//	r.Init()
//	r.Enter(core.ModeDisabled)
//
// All hooks must be called from a single goroutine, the host's control loop.
// The autonomous chooser may be written from other goroutines.
//
// # Initialization
//
// Init runs once, before the first transition. It logs the build data and
// calls, when the root implements them and in this order, ButtonBinder,
// DashboardPopulator and DefaultCommandSetter. It then builds the capability
// indices and offers every autonomous routine to the chooser. When more than
// one routine claims to be the default, the last one registered wins and a
// warning carrying core.ErrAmbiguousDefault is logged.
//
// Hooks called before Init run Init implicitly.
package robot
