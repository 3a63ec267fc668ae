// Package command contains ready-made core.Command implementations and the
// composite groups used to build autonomous routines and operator actions.
// The package focuses on three concerns:
//
//  1. Shared identity and requirement plumbing (Base)
//  2. Leaf commands built from functions (Instant, Run, Functional, Wait, WaitUntil)
//  3. Coordination patterns (Sequential, Parallel, Race, Deadline, Repeat)
//
// Execution Model:
//   - Every command is driven by a scheduler, one Execute per tick
//   - Groups advance their children from their own Execute; a group requires
//     the union of its children's subsystems
//   - Nothing blocks: Wait compares an injected clock, it never sleeps
//
// A child command must belong to a single group and must not be scheduled on
// its own while the group runs.
package command
