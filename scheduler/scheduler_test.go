package scheduler

import (
	"errors"
	"testing"

	"github.com/chopshop166/commandrobot/command"
	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(logger *testutil.Logger) *Scheduler {
	return New(func(o *Options) {
		o.Logger = logger
	})
}

func TestScheduler_LifecycleOfFinishingCommand(t *testing.T) {
	s := New()
	cmd := &testutil.Command{CommandName: "score", FinishAfter: 2}

	s.Schedule(cmd)
	assert.Equal(t, 1, cmd.Initialized)
	assert.True(t, s.IsScheduled(cmd))

	s.Run()
	assert.Equal(t, 1, cmd.Executed)
	assert.True(t, s.IsScheduled(cmd))

	s.Run()
	assert.Equal(t, 2, cmd.Executed)
	assert.False(t, s.IsScheduled(cmd))
	assert.Equal(t, 1, cmd.Ended)
	assert.False(t, cmd.Interrupted)

	s.Run()
	assert.Equal(t, 2, cmd.Executed, "finished commands are not executed again")
}

func TestScheduler_ScheduleTwiceIsIgnored(t *testing.T) {
	s := New()
	cmd := testutil.NewCommand("hold")

	s.Schedule(cmd, cmd)
	s.Schedule(cmd)

	assert.Equal(t, 1, cmd.Initialized)
	assert.Len(t, s.Scheduled(), 1)
}

func TestScheduler_ScheduleNil(t *testing.T) {
	logger := &testutil.Logger{}
	s := newTestScheduler(logger)

	s.Schedule(nil)
	assert.Empty(t, s.Scheduled())
	assert.Len(t, logger.Messages("scheduler.schedule.nil"), 1)
	assert.False(t, s.IsScheduled(nil))
}

func TestScheduler_Cancel(t *testing.T) {
	s := New()
	a := testutil.NewCommand("a")
	b := testutil.NewCommand("b")
	s.Schedule(a, b)

	s.Cancel(a, testutil.NewCommand("unknown"), nil)

	assert.False(t, s.IsScheduled(a))
	assert.True(t, s.IsScheduled(b))
	assert.Equal(t, 1, a.Ended)
	assert.True(t, a.Interrupted)

	s.Cancel(a)
	assert.Equal(t, 1, a.Ended, "cancelling an idle command does nothing")
}

func TestScheduler_CancelAll(t *testing.T) {
	s := New()
	a := testutil.NewCommand("a")
	b := testutil.NewCommand("b")
	s.Schedule(a, b)

	var order []string
	s.OnInterrupt(func(cc *CallbackContext) error {
		order = append(order, cc.Command.Name())
		return nil
	})

	s.CancelAll()
	assert.Empty(t, s.Scheduled())
	assert.True(t, a.Interrupted)
	assert.True(t, b.Interrupted)
	assert.Equal(t, []string{"a", "b"}, order)

	s.CancelAll()
}

func TestScheduler_RequirementConflictInterruptsOlder(t *testing.T) {
	arm := &testutil.Subsystem{SubsystemName: "Arm"}
	drivetrain := &testutil.Subsystem{SubsystemName: "Drive"}
	older := &testutil.Command{CommandName: "older", Requires: []core.Subsystem{arm}}
	unrelated := &testutil.Command{CommandName: "unrelated", Requires: []core.Subsystem{drivetrain}}
	newer := &testutil.Command{CommandName: "newer", Requires: []core.Subsystem{arm}}

	s := New()
	s.Schedule(older, unrelated)
	s.Schedule(newer)

	assert.False(t, s.IsScheduled(older))
	assert.True(t, older.Interrupted)
	assert.True(t, s.IsScheduled(unrelated))
	assert.True(t, s.IsScheduled(newer))
	assert.Equal(t, newer, s.Requiring(arm))
	assert.Nil(t, s.Requiring(&testutil.Subsystem{SubsystemName: "Idle"}))
}

func TestScheduler_RunsSubsystemPeriodic(t *testing.T) {
	s := New()
	arm := &testutil.Subsystem{SubsystemName: "Arm"}
	s.RegisterSubsystem(arm, arm, nil)

	s.Run()
	s.Run()

	assert.Equal(t, 2, arm.Ticks)
	assert.Equal(t, []core.Subsystem{arm}, s.Subsystems())
}

func TestScheduler_DefaultCommand(t *testing.T) {
	arm := &testutil.Subsystem{SubsystemName: "Arm"}
	idle := &testutil.Command{CommandName: "idle", Requires: []core.Subsystem{arm}}
	lift := &testutil.Command{CommandName: "lift", FinishAfter: 1, Requires: []core.Subsystem{arm}}

	s := New()
	require.NoError(t, s.SetDefaultCommand(arm, idle))
	assert.Equal(t, idle, s.DefaultCommand(arm))
	assert.Contains(t, s.Subsystems(), core.Subsystem(arm))

	s.Run()
	assert.True(t, s.IsScheduled(idle), "idle subsystem gets its default")

	s.Schedule(lift)
	assert.False(t, s.IsScheduled(idle))
	assert.True(t, idle.Interrupted)

	s.Run()
	assert.False(t, s.IsScheduled(lift))
	assert.True(t, s.IsScheduled(idle), "default resumes once the subsystem is free")
	assert.Equal(t, 2, idle.Initialized)

	require.NoError(t, s.SetDefaultCommand(arm, nil))
	assert.Nil(t, s.DefaultCommand(arm))
}

func TestScheduler_DefaultCommandMustRequireSubsystem(t *testing.T) {
	arm := &testutil.Subsystem{SubsystemName: "Arm"}
	s := New()

	err := s.SetDefaultCommand(arm, testutil.NewCommand("free"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDefaultRequirement))
	assert.Contains(t, err.Error(), "free does not require Arm")

	assert.Error(t, s.SetDefaultCommand(nil, testutil.NewCommand("x")))
}

func TestScheduler_PanicInExecuteIsContained(t *testing.T) {
	logger := &testutil.Logger{}
	s := newTestScheduler(logger)
	faulty := &testutil.Command{CommandName: "faulty", PanicOnExec: "boom"}
	healthy := testutil.NewCommand("healthy")

	var cause error
	s.OnInterrupt(func(cc *CallbackContext) error {
		cause = cc.Err
		return nil
	})

	s.Schedule(faulty, healthy)
	assert.NotPanics(t, s.Run)

	assert.False(t, s.IsScheduled(faulty))
	assert.Equal(t, 1, faulty.Ended)
	assert.True(t, faulty.Interrupted)
	assert.Equal(t, 1, healthy.Executed)

	var panicErr *core.PanicError
	require.ErrorAs(t, cause, &panicErr)
	assert.Equal(t, "boom", panicErr.Value)

	entries := logger.Messages("scheduler.command.panic")
	require.Len(t, entries, 1)
	assert.Equal(t, "execute", entries[0].Attr("phase"))
	assert.Equal(t, "faulty", entries[0].Attr("command"))
}

func TestScheduler_PanicInInitializeIsNotScheduled(t *testing.T) {
	s := New()
	ended := false
	cmd := command.NewFunctional("bad init",
		func() { panic("no sensor") },
		nil, nil,
		func(interrupted bool) { ended = interrupted },
	)

	assert.NotPanics(t, func() { s.Schedule(cmd) })
	assert.False(t, s.IsScheduled(cmd))
	assert.True(t, ended)
}

func TestScheduler_SubsystemPanicIsLogged(t *testing.T) {
	logger := &testutil.Logger{}
	s := newTestScheduler(logger)
	s.RegisterSubsystem(panickySubsystem{})

	assert.NotPanics(t, s.Run)
	assert.Len(t, logger.Messages("scheduler.subsystem.panic"), 1)
}

type panickySubsystem struct{}

func (panickySubsystem) Name() string { return "panicky" }
func (panickySubsystem) Periodic() { panic("periodic") }

func TestScheduler_CancelDuringRunSkipsCancelledCommand(t *testing.T) {
	s := New()
	victim := testutil.NewCommand("victim")
	killer := command.NewFunctional("killer", nil, func() { s.Cancel(victim) }, nil, nil)

	s.Schedule(killer, victim)
	s.Run()

	assert.Equal(t, 0, victim.Executed)
	assert.True(t, victim.Interrupted)
}

func TestScheduler_CallbacksFireInLifecycleOrder(t *testing.T) {
	s := New()
	cmd := &testutil.Command{CommandName: "shoot", FinishAfter: 1}

	var events []CallbackType
	record := func(cc *CallbackContext) error {
		events = append(events, cc.CallbackType)
		return nil
	}
	s.OnInitialize(record)
	s.OnExecute(record)
	s.OnFinish(record)
	s.OnInterrupt(record)

	s.Schedule(cmd)
	s.Run()

	assert.Equal(t, []CallbackType{CallbackInitialize, CallbackExecute, CallbackFinish}, events)
}

func TestScheduler_RunIDsAreUniquePerScheduling(t *testing.T) {
	s := New()
	cmd := testutil.NewCommand("loop")

	var ids []string
	s.OnInitialize(func(cc *CallbackContext) error {
		ids = append(ids, cc.RunID)
		return nil
	})

	s.Schedule(cmd)
	first, ok := s.RunID(cmd)
	require.True(t, ok)
	s.Cancel(cmd)
	s.Schedule(cmd)
	second, _ := s.RunID(cmd)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{first, second}, ids)

	_, ok = s.RunID(testutil.NewCommand("other"))
	assert.False(t, ok)
}

func TestScheduler_CallbackErrorIsLogged(t *testing.T) {
	logger := &testutil.Logger{}
	s := newTestScheduler(logger)

	calledSecond := false
	s.OnInitialize(func(*CallbackContext) error { return errors.New("dashboard offline") })
	s.OnInitialize(func(*CallbackContext) error {
		calledSecond = true
		return nil
	})

	s.Schedule(testutil.NewCommand("a"))

	assert.False(t, calledSecond)
	entries := logger.Messages("scheduler.callback.failed")
	require.Len(t, entries, 1)
	assert.Equal(t, "initialize", entries[0].Attr("event"))
}

func TestLoggingCallback(t *testing.T) {
	logger := &testutil.Logger{}
	s := New()
	s.Callbacks().RegisterCallback(NewLoggingCallback(CallbackInterrupt, logger))
	assert.Equal(t, 1, s.Callbacks().Len(CallbackInterrupt))

	cmd := testutil.NewCommand("spin")
	s.Schedule(cmd)
	runID, _ := s.RunID(cmd)
	s.Cancel(cmd)

	entries := logger.Messages("scheduler.callback")
	require.Len(t, entries, 1)
	assert.Equal(t, "interrupt", entries[0].Attr("event"))
	assert.Equal(t, runID, entries[0].Attr("run_id"))
	assert.Equal(t, "spin", entries[0].Attr("command"))
}

func TestCallbackManager_IgnoresNil(t *testing.T) {
	cm := NewCallbackManager()
	cm.RegisterCallback(nil)
	assert.Equal(t, 0, cm.Len(CallbackFinish))
	assert.NoError(t, cm.ExecuteCallbacks(CallbackFinish, &CallbackContext{}))
	assert.NoError(t, NewFunctionCallback(CallbackFinish, nil).Execute(&CallbackContext{}))
}
