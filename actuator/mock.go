package actuator

import "github.com/chopshop166/commandrobot/core"

var (
	_ MotorController    = (*MockMotorController)(nil)
	_ Encoder            = (*MockEncoder)(nil)
	_ Solenoid           = (*MockSolenoid)(nil)
	_ core.SafeStateable = (*MockSolenoid)(nil)
	_ core.Resettable    = (*MockSolenoid)(nil)
)

// MockMotorController remembers the last commanded speed.
type MockMotorController struct {
	speed    float64
	inverted bool
	disabled bool
}

// Set records speed and re-enables the controller.
func (m *MockMotorController) Set(speed float64) {
	m.speed = speed
	m.disabled = false
}

// Get returns the last speed.
func (m *MockMotorController) Get() float64 { return m.speed }

// SetInverted records the inversion flag.
func (m *MockMotorController) SetInverted(inverted bool) { m.inverted = inverted }

// Inverted returns the inversion flag.
func (m *MockMotorController) Inverted() bool { return m.inverted }

// Disable zeroes the speed and marks the controller disabled.
func (m *MockMotorController) Disable() {
	m.speed = 0
	m.disabled = true
}

// Disabled reports whether Disable was called since the last Set.
func (m *MockMotorController) Disabled() bool { return m.disabled }

// StopMotor zeroes the speed.
func (m *MockMotorController) StopMotor() { m.speed = 0 }

// MockEncoder reports a settable distance and rate.
type MockEncoder struct {
	distance float64
	rate     float64
}

// SetDistance sets the value returned by Distance.
func (e *MockEncoder) SetDistance(d float64) { e.distance = d }

// SetRate sets the value returned by Rate.
func (e *MockEncoder) SetRate(r float64) { e.rate = r }

// Distance returns the configured distance.
func (e *MockEncoder) Distance() float64 { return e.distance }

// Rate returns the configured rate.
func (e *MockEncoder) Rate() float64 { return e.rate }

// Reset zeroes distance and rate.
func (e *MockEncoder) Reset() error {
	e.distance = 0
	e.rate = 0
	return nil
}

// MockSolenoid is a solenoid that does not correlate with any real hardware.
// Its safe state is retracted.
type MockSolenoid struct {
	value bool
}

// Set extends (true) or retracts (false) the solenoid.
func (s *MockSolenoid) Set(on bool) { s.value = on }

// Get returns the current value.
func (s *MockSolenoid) Get() bool { return s.value }

// SafeState retracts the solenoid.
func (s *MockSolenoid) SafeState() error {
	s.value = false
	return nil
}

// Reset retracts the solenoid.
func (s *MockSolenoid) Reset() error {
	s.value = false
	return nil
}
