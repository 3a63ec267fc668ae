package capability

import (
	"fmt"

	"github.com/chopshop166/commandrobot/core"
)

// Registry holds the three capability indices of one composed robot.
//
// Build scans the root once; the indices are immutable until Rebuild is
// called for a reconfigured root. Registry is not safe for concurrent use: it
// is built before the control loop starts and only read afterwards.
type Registry struct {
	opts    Options
	manual  []Handle
	indices map[Kind]Index
	built   bool
}

// NewRegistry returns an empty registry.
func NewRegistry(optFns ...func(o *Options)) *Registry {
	return &Registry{opts: newOptions(optFns), indices: map[Kind]Index{}}
}

// Register adds a member explicitly, for components that are not direct
// fields of the root. Registered members are appended after the discovered
// fields in registration order, and become visible on the next Build or
// Rebuild. A member must implement at least one capability.
func (r *Registry) Register(name string, member any) error {
	if name == "" {
		return fmt.Errorf("capability: name is required")
	}
	if member == nil {
		return fmt.Errorf("capability: member is required for %s", name)
	}
	implemented := false
	for _, k := range Kinds() {
		if k.Satisfied(member) {
			implemented = true
			break
		}
	}
	if !implemented {
		return fmt.Errorf("capability: %s (%T) implements no capability", name, member)
	}
	r.manual = append(r.manual, Handle{Name: name, Member: member})
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(name string, member any) {
	if err := r.Register(name, member); err != nil {
		panic(err)
	}
}

// Build scans root and builds every index. It is a no-op once built.
func (r *Registry) Build(root any) {
	if r.built {
		return
	}
	r.Rebuild(root)
}

// Rebuild discards the indices and scans root again.
func (r *Registry) Rebuild(root any) {
	fields := structFields(root, r.opts.Logger)
	indices := make(map[Kind]Index, len(Kinds()))
	for _, k := range Kinds() {
		handles := classify(fields, k, r.opts.Logger)
		for _, h := range r.manual {
			if k.Satisfied(h.Member) {
				handles = append(handles, h)
			}
		}
		indices[k] = newIndex(k, handles)
		r.opts.Logger.Debug("capability.index.built", "capability", k.String(), "members", len(handles))
	}
	r.indices = indices
	r.built = true
}

// Built reports whether Build or Rebuild has run.
func (r *Registry) Built() bool { return r.built }

// Index returns the index for kind; empty before Build.
func (r *Registry) Index(kind Kind) Index {
	if idx, ok := r.indices[kind]; ok {
		return idx
	}
	return newIndex(kind, nil)
}

// Resettables returns the reset index.
func (r *Registry) Resettables() Index { return r.Index(KindResettable) }

// SafeStateables returns the safe-state index.
func (r *Registry) SafeStateables() Index { return r.Index(KindSafeStateable) }

// Autonomous returns the autonomous candidate index.
func (r *Registry) Autonomous() Index { return r.Index(KindAutonomous) }

// ResetAll resets every resettable member.
func (r *Registry) ResetAll() SweepReport {
	return Sweep(r.Resettables(), resetMember, r.withOptions)
}

// SafeStateAll puts every safe-stateable member into its safe state.
func (r *Registry) SafeStateAll() SweepReport {
	return Sweep(r.SafeStateables(), safeStateMember, r.withOptions)
}

// Routines returns the autonomous routines offered by the candidate index, in
// index order. Candidates without a command are logged and skipped; a
// candidate that panics while describing itself is skipped the same way.
func (r *Registry) Routines() []core.Routine {
	var routines []core.Routine
	taken := map[string]bool{}
	for _, h := range r.Autonomous().handles {
		routine, err := describe(h.Member.(core.AutonomousCandidate))
		if err != nil {
			logAccess(r.opts.Logger, &core.AccessError{Member: h.Name, Reason: err.Error()}, "capability", KindAutonomous.String())
			continue
		}
		if routine.Command == nil {
			logAccess(r.opts.Logger, &core.AccessError{Member: h.Name, Reason: "routine has no command"}, "capability", KindAutonomous.String())
			continue
		}
		routine.Name = r.routineName(routine, h, taken)
		taken[routine.Name] = true
		routines = append(routines, routine)
	}
	return routines
}

// routineName picks a unique chooser key: the display name, falling back to
// the member name, qualified by the member name on collision.
func (r *Registry) routineName(routine core.Routine, h Handle, taken map[string]bool) string {
	name := routine.DisplayName()
	if name == "" {
		name = h.Name
	}
	if !taken[name] {
		return name
	}
	unique := fmt.Sprintf("%s (%s)", name, h.Name)
	for n := 2; taken[unique]; n++ {
		unique = fmt.Sprintf("%s (%s %d)", name, h.Name, n)
	}
	r.opts.Logger.Warn("capability.autonomous.duplicate_name",
		"member", h.Name, "name", name, "renamed", unique)
	return unique
}

func describe(c core.AutonomousCandidate) (routine core.Routine, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &core.PanicError{Value: v}
		}
	}()
	return c.Routine(), nil
}

func (r *Registry) withOptions(o *Options) { *o = r.opts }
