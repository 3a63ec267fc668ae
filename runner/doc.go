// Package runner drives a robot from a periodic host loop.
//
// The Runner polls a mode source on every period, enters the robot into the
// new mode when it changes, and then ticks the robot. It is a convenience for
// simulations and for hosts that do not supply their own loop; a host that
// already calls the robot's hooks does not need it.
//
// # Responsibilities
//   - Mode polling and transition dispatch
//   - One OnTick per period
//   - Loop overrun reporting
//   - Entering Disabled on shutdown so actuators are left in a safe state
//
// Example:
//
//	r := runner.New(bot, func(o *runner.Options) {
//	    o.Period = cfg.Loop.Period
//	    o.ModeSource = driverStation.Mode
//	    o.Logger = logger
//	})
//	if err := r.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package runner
