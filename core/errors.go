package core

import (
	"errors"
	"fmt"
)

// ErrAmbiguousDefault reports that more than one autonomous routine claimed
// default status. The last registered routine wins.
var ErrAmbiguousDefault = errors.New("more than one default autonomous routine")

// AccessError reports a member of the composed robot that could not be
// inspected or invoked (unexported, nil, or not addressable). Discovery skips
// the member and continues.
type AccessError struct {
	Member string
	Reason string
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return fmt.Sprintf("member %s is not accessible: %s", e.Member, e.Reason)
}

// SweepError reports a single member's failure during a capability sweep.
type SweepError struct {
	Capability string
	Member     string
	Err        error
}

// Error implements the error interface.
func (e *SweepError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Capability, e.Member, e.Err)
}

// Unwrap returns the underlying failure.
func (e *SweepError) Unwrap() error { return e.Err }

// PanicError carries a value recovered from a panicking component.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
