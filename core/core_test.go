package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedCommand struct{ name string }

func (c namedCommand) Name() string { return c.name }
func (namedCommand) Initialize() {}
func (namedCommand) Execute() {}
func (namedCommand) IsFinished() bool { return true }
func (namedCommand) End(interrupted bool) {}

func TestModeString(t *testing.T) {
	assert.Equal(t, "disabled", ModeDisabled.String())
	assert.Equal(t, "autonomous", ModeAutonomous.String())
	assert.Equal(t, "teleop", ModeTeleop.String())
	assert.Equal(t, "test", ModeTest.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	m, err := ParseMode(" AUTO ")
	require.NoError(t, err)
	assert.Equal(t, ModeAutonomous, m)

	_, err = ParseMode("practice")
	assert.Error(t, err)
}

func TestRoutineDisplayName(t *testing.T) {
	cmd := namedCommand{name: "DriveForward"}

	assert.Equal(t, "DriveForward", Routine{Command: cmd}.DisplayName())
	assert.Equal(t, "Two Ball", Routine{Name: "Two Ball", Command: cmd}.DisplayName())
	assert.Equal(t, "", Routine{}.DisplayName())
}

func TestAutoCommand(t *testing.T) {
	cmd := namedCommand{name: "Score"}
	auto := Auto(cmd, AutoOptions{Name: "Score High", Default: true})

	var candidate AutonomousCandidate = auto
	r := candidate.Routine()

	assert.Equal(t, "Score High", r.Name)
	assert.Equal(t, cmd, r.Command)
	assert.True(t, r.Default)
	assert.Equal(t, "Score", auto.Name())
}

func TestRequirementsOf(t *testing.T) {
	assert.Nil(t, RequirementsOf(namedCommand{name: "plain"}))
}

func TestSweepErrorUnwrap(t *testing.T) {
	cause := errors.New("encoder unplugged")
	err := error(&SweepError{Capability: "reset", Member: "Arm", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "reset failed for Arm")

	var sweepErr *SweepError
	require.ErrorAs(t, err, &sweepErr)
	assert.Equal(t, "Arm", sweepErr.Member)
}

func TestPanicErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, &PanicError{Value: cause}, cause)
	assert.Nil(t, (&PanicError{Value: "text"}).Unwrap())
	assert.Equal(t, "panic: text", (&PanicError{Value: "text"}).Error())
}

func TestAccessError(t *testing.T) {
	err := &AccessError{Member: "drive", Reason: "unexported field"}
	assert.Equal(t, "member drive is not accessible: unexported field", err.Error())
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestSelectorFunc(t *testing.T) {
	cmd := namedCommand{name: "x"}
	var s Selector = SelectorFunc(func() Command { return cmd })
	assert.Equal(t, cmd, s.Selected())
}
