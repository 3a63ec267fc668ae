package core

import (
	"fmt"
	"strings"
)

// Mode is the robot's discrete operating phase.
type Mode int

const (
	// ModeDisabled is the initial mode: outputs are safe, nothing runs.
	ModeDisabled Mode = iota
	// ModeAutonomous runs the selected autonomous routine.
	ModeAutonomous
	// ModeTeleop runs operator-driven commands.
	ModeTeleop
	// ModeTest is used for pit diagnostics.
	ModeTest
)

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeDisabled, ModeAutonomous, ModeTeleop, ModeTest}
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "disabled"
	case ModeAutonomous:
		return "autonomous"
	case ModeTeleop:
		return "teleop"
	case ModeTest:
		return "test"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled":
		return ModeDisabled, nil
	case "autonomous", "auto":
		return ModeAutonomous, nil
	case "teleop":
		return ModeTeleop, nil
	case "test":
		return ModeTest, nil
	default:
		return ModeDisabled, fmt.Errorf("unknown mode %q", s)
	}
}
