// Package robotmap selects a robot's hardware map by name.
//
// One code base usually drives several physical robots (a competition robot
// and a practice robot, say) that differ in wiring. Each variant registers a
// factory under the name of the robot it describes, and the program resolves
// the map for the robot it is running on. How that name is obtained is up to
// the caller.
package robotmap
