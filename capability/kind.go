package capability

import (
	"fmt"
	"reflect"

	"github.com/chopshop166/commandrobot/core"
)

// Kind tags one capability contract.
type Kind int

const (
	// KindResettable selects core.Resettable members.
	KindResettable Kind = iota
	// KindSafeStateable selects core.SafeStateable members.
	KindSafeStateable
	// KindAutonomous selects core.AutonomousCandidate members.
	KindAutonomous
)

// Kinds lists every capability kind.
func Kinds() []Kind {
	return []Kind{KindResettable, KindSafeStateable, KindAutonomous}
}

var contracts = map[Kind]reflect.Type{
	KindResettable:    reflect.TypeOf((*core.Resettable)(nil)).Elem(),
	KindSafeStateable: reflect.TypeOf((*core.SafeStateable)(nil)).Elem(),
	KindAutonomous:    reflect.TypeOf((*core.AutonomousCandidate)(nil)).Elem(),
}

// String returns the name used in logs and sweep reports.
func (k Kind) String() string {
	switch k {
	case KindResettable:
		return "reset"
	case KindSafeStateable:
		return "safe_state"
	case KindAutonomous:
		return "autonomous"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Contract returns the interface type a member must implement.
func (k Kind) Contract() reflect.Type {
	return contracts[k]
}

// Satisfied reports whether v implements the capability.
func (k Kind) Satisfied(v any) bool {
	if v == nil {
		return false
	}
	c := k.Contract()
	return c != nil && reflect.TypeOf(v).Implements(c)
}
