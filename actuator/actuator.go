package actuator

// MotorController is the capability surface of a speed controller driver.
type MotorController interface {
	Set(speed float64)
	Get() float64
	SetInverted(inverted bool)
	Inverted() bool
	Disable()
	StopMotor()
}

// Encoder measures travel of a mechanism.
type Encoder interface {
	Distance() float64
	Rate() float64
	Reset() error
}

// Solenoid is a pneumatic valve.
type Solenoid interface {
	Set(on bool)
	Get() bool
}
