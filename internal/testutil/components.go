package testutil

// Resettable counts Reset calls and optionally fails or panics.
type Resettable struct {
	Calls     int
	Err       error
	PanicWith any
}

// Reset implements core.Resettable.
func (r *Resettable) Reset() error {
	r.Calls++
	if r.PanicWith != nil {
		panic(r.PanicWith)
	}
	return r.Err
}

// SafeStateable counts SafeState calls and optionally fails or panics.
type SafeStateable struct {
	Calls     int
	Err       error
	PanicWith any
}

// SafeState implements core.SafeStateable.
func (s *SafeStateable) SafeState() error {
	s.Calls++
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	return s.Err
}

// Component implements both Resettable and SafeStateable and records the
// order of calls in a shared journal when one is set.
type Component struct {
	Label      string
	ResetCalls int
	SafeCalls  int
	Journal    *[]string
	ResetErr   error
	SafeErr    error
}

// Reset implements core.Resettable.
func (c *Component) Reset() error {
	c.ResetCalls++
	c.record("reset")
	return c.ResetErr
}

// SafeState implements core.SafeStateable.
func (c *Component) SafeState() error {
	c.SafeCalls++
	c.record("safe_state")
	return c.SafeErr
}

func (c *Component) record(op string) {
	if c.Journal != nil {
		*c.Journal = append(*c.Journal, c.Label+":"+op)
	}
}
