// Package actuator wraps externally supplied motor controllers and solenoids
// so they take part in the robot lifecycle.
//
// Hardware access is out of scope: MotorController, Encoder and Solenoid are
// the capability surfaces a vendor driver exposes. SmartMotorController adds
// an output modifier pipeline on top of any MotorController and implements
// core.SafeStateable and core.Resettable, so a robot that declares one as a
// field gets it stopped and zeroed on every entry to Disabled.
//
// The Mock* types hold their state in memory and back tests and simulation.
package actuator
