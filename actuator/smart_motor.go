package actuator

import (
	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/modifier"
)

var (
	_ core.SafeStateable = (*SmartMotorController)(nil)
	_ core.Resettable    = (*SmartMotorController)(nil)
	_ MotorController    = (*SmartMotorController)(nil)
)

// SmartMotorController is a MotorController with an attached encoder and an
// output modifier pipeline. Set runs the commanded speed through the pipeline
// before forwarding it to the wrapped controller.
type SmartMotorController struct {
	wrapped   MotorController
	encoder   Encoder
	modifiers *modifier.Pipeline
}

// NewSmartMotorController wraps a motor controller with a mock encoder.
func NewSmartMotorController(wrapped MotorController, mods ...modifier.Modifier) *SmartMotorController {
	return NewSmartMotorControllerWithEncoder(wrapped, &MockEncoder{}, mods...)
}

// NewSmartMotorControllerWithEncoder wraps a motor controller and its encoder.
// A nil wrapped controller is replaced by a MockMotorController and a nil
// encoder by a MockEncoder.
func NewSmartMotorControllerWithEncoder(wrapped MotorController, encoder Encoder, mods ...modifier.Modifier) *SmartMotorController {
	if wrapped == nil {
		wrapped = &MockMotorController{}
	}
	if encoder == nil {
		encoder = &MockEncoder{}
	}
	return &SmartMotorController{
		wrapped:   wrapped,
		encoder:   encoder,
		modifiers: modifier.NewPipeline(mods...),
	}
}

// Encoder returns the attached encoder, or the mock installed in its place.
func (s *SmartMotorController) Encoder() Encoder { return s.encoder }

// AddModifiers appends output modifiers.
func (s *SmartMotorController) AddModifiers(m modifier.Modifier, ms ...modifier.Modifier) {
	s.modifiers.Add(m, ms...)
}

// AddAllModifiers appends every modifier of ms.
func (s *SmartMotorController) AddAllModifiers(ms []modifier.Modifier) {
	s.modifiers.AddAll(ms)
}

// UsePipeline replaces the output pipeline, typically with one built from
// configuration via modifier.FromSpecs.
func (s *SmartMotorController) UsePipeline(p *modifier.Pipeline) {
	if p == nil {
		p = modifier.NewPipeline()
	}
	s.modifiers = p
}

// Set forwards the modified speed.
func (s *SmartMotorController) Set(speed float64) {
	s.wrapped.Set(s.modifiers.Apply(speed))
}

// Get returns the last speed the wrapped controller received.
func (s *SmartMotorController) Get() float64 { return s.wrapped.Get() }

// SetInverted is meant for configuration in the robot map only; subsystems
// should express inversion with a modifier instead.
func (s *SmartMotorController) SetInverted(inverted bool) { s.wrapped.SetInverted(inverted) }

// Inverted reports the wrapped controller's inversion flag.
func (s *SmartMotorController) Inverted() bool { return s.wrapped.Inverted() }

// Disable disables the wrapped controller.
func (s *SmartMotorController) Disable() { s.wrapped.Disable() }

// StopMotor stops the wrapped controller.
func (s *SmartMotorController) StopMotor() { s.wrapped.StopMotor() }

// SafeState stops the motor.
func (s *SmartMotorController) SafeState() error {
	s.wrapped.StopMotor()
	return nil
}

// Reset zeroes the encoder and clears stateful modifiers such as rate limiters.
func (s *SmartMotorController) Reset() error {
	if err := s.encoder.Reset(); err != nil {
		return err
	}
	return s.modifiers.Reset()
}
