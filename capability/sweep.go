package capability

import (
	"errors"
	"time"

	"github.com/chopshop166/commandrobot/core"
)

// MemberResult is the outcome of one member's invocation during a sweep.
// Err is nil on success and a *core.SweepError otherwise.
type MemberResult struct {
	Member string
	Err    error
}

// SweepReport collects the per-member results of one sweep, in index order.
type SweepReport struct {
	Capability string
	Results    []MemberResult
	Duration   time.Duration
}

// Attempted returns how many members were invoked.
func (r SweepReport) Attempted() int { return len(r.Results) }

// Failures returns the results that carry an error.
func (r SweepReport) Failures() []MemberResult {
	var out []MemberResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every member succeeded. An empty sweep is OK.
func (r SweepReport) OK() bool { return len(r.Failures()) == 0 }

// Err joins every member failure, or returns nil when the sweep succeeded.
func (r SweepReport) Err() error {
	var errs []error
	for _, res := range r.Failures() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}

type sweepLogger interface {
	LogSweep(capability string, attempted, failed int, dur time.Duration)
}

// Sweep invokes op on every member of idx. A member that returns an error or
// panics is recorded and the sweep moves on; op is attempted exactly once per
// member regardless of earlier failures.
func Sweep(idx Index, op func(member any) error, optFns ...func(o *Options)) SweepReport {
	opts := newOptions(optFns)
	capability := idx.Kind().String()
	start := time.Now()

	report := SweepReport{Capability: capability, Results: make([]MemberResult, 0, idx.Len())}
	for _, h := range idx.handles {
		res := MemberResult{Member: h.Name}
		if err := invoke(op, h.Member); err != nil {
			res.Err = &core.SweepError{Capability: capability, Member: h.Name, Err: err}
			opts.Logger.Error("capability.sweep.member_failed", "capability", capability, "member", h.Name, "error", err)
		}
		report.Results = append(report.Results, res)
	}
	report.Duration = time.Since(start)

	failed := len(report.Failures())
	if sl, ok := opts.Logger.(sweepLogger); ok {
		sl.LogSweep(capability, report.Attempted(), failed, report.Duration)
	} else {
		opts.Logger.Debug("capability.sweep.done", "capability", capability, "attempted", report.Attempted(), "failed", failed)
	}
	return report
}

func invoke(op func(member any) error, member any) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &core.PanicError{Value: v}
		}
	}()
	return op(member)
}

func resetMember(member any) error {
	return member.(core.Resettable).Reset()
}

func safeStateMember(member any) error {
	return member.(core.SafeStateable).SafeState()
}
