package commandrobot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chopshop166/commandrobot/config"
	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBot struct {
	Arm  *testutil.Component
	Taxi *core.AutoCommand
}

func newTestBot() *testBot {
	return &testBot{
		Arm:  &testutil.Component{Label: "arm"},
		Taxi: core.Auto(testutil.NewCommand("Taxi"), core.AutoOptions{Default: true}),
	}
}

func TestNew_Defaults(t *testing.T) {
	cr, err := New(newTestBot(), func(o *Options) { o.Logger = &testutil.Logger{} })
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cr.Config())
	assert.NotNil(t, cr.Robot())
	assert.NotNil(t, cr.Scheduler())
	assert.NotNil(t, cr.Runner())
	assert.Same(t, cr.Scheduler(), cr.Robot().Scheduler())
}

func TestNew_LoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	doc := "autonomous:\n  default: Taxi\nactuators:\n  arm:\n    - type: scale\n      factor: 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cr, err := New(newTestBot(), func(o *Options) {
		o.ConfigPath = path
		o.Logger = &testutil.Logger{}
	})
	require.NoError(t, err)

	p, err := cr.Pipeline("arm")
	require.NoError(t, err)
	assert.Equal(t, 0.25, p.Apply(0.5))
	assert.Equal(t, "Taxi", cr.Config().Autonomous.Default)
}

func TestNew_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := New(newTestBot(), func(o *Options) { o.ConfigPath = path })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commandrobot")
}

func TestRun_DrivesModes(t *testing.T) {
	bot := newTestBot()
	var steps int
	cr, err := New(bot, func(o *Options) {
		o.Logger = &testutil.Logger{}
		cfg := config.Default()
		cfg.Loop.Period = time.Millisecond
		o.Config = cfg
		o.ModeSource = func() core.Mode {
			steps++
			if steps < 3 {
				return core.ModeAutonomous
			}
			return core.ModeTeleop
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	require.NoError(t, cr.Run(ctx))

	taxi := bot.Taxi.Command.(*testutil.Command)
	assert.Equal(t, 1, taxi.Initialized)
	assert.True(t, taxi.Interrupted, "teleop cancels the autonomous routine")
	assert.Equal(t, 1, bot.Arm.SafeCalls, "shutdown enters disabled")
	assert.Equal(t, core.ModeDisabled, cr.Runner().Mode())
}
