// Package scheduler provides the command scheduler the robot drives on each
// control tick.
//
// The Scheduler owns the set of running commands. On every Run it:
//  1. calls Periodic on every registered subsystem
//  2. executes each scheduled command once, in scheduling order
//  3. ends and removes commands that report IsFinished
//  4. schedules default commands for idle subsystems
//
// Requirements are exclusive: scheduling a command interrupts every command
// that holds one of its required subsystems. A panic raised by any lifecycle
// method of a command is recovered, logged, and the command is ended as
// interrupted, so one faulty command cannot stop the control loop.
//
// Lifecycle events can be observed through a CallbackManager:
//
//	s := scheduler.New(func(o *scheduler.Options) {
//	    o.Logger = logger
//	})
//	s.OnFinish(func(cc *scheduler.CallbackContext) error {
//	    logger.Info("finished", "command", cc.Command.Name())
//	    return nil
//	})
//
// The scheduler is not safe for concurrent use; it is driven from the single
// control goroutine. Only callback registration is synchronized.
package scheduler
