// Package core provides the foundational contracts shared by every
// commandrobot package. It defines the small interfaces for:
//
//   - Commands (units of scheduled work) and the Subsystems they require
//   - Capabilities (Resettable, SafeStateable, AutonomousCandidate)
//   - The Scheduler and Selector collaborators consumed by the orchestrator
//   - Modes (Disabled, Autonomous, Teleop, Test)
//   - Typed errors reported by discovery and sweeps
//
// The package intentionally keeps implementation concerns (scheduling,
// discovery, orchestration, concrete commands) out of scope so custom
// components can be plugged in without importing the rest of the module.
package core
