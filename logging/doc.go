// Package logging provides a minimal logging interface and adapters for
// commandrobot.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the registry, scheduler and orchestrator use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - RobotLogger with component/mode scoping and control-loop helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	r := robot.New(myRobot, func(o *robot.Options) { o.Logger = logger })
//
// Every component defaults to NoOpLogger, so logging is opt-in.
package logging
