package actuator

import (
	"errors"
	"testing"

	"github.com/chopshop166/commandrobot/modifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenEncoder struct{ MockEncoder }

func (*brokenEncoder) Reset() error { return errors.New("encoder unplugged") }

func TestSmartMotorController_SetAppliesModifiers(t *testing.T) {
	motor := &MockMotorController{}
	smart := NewSmartMotorController(motor, modifier.Clamp(-0.5, 0.5), modifier.Negate())

	smart.Set(0.9)
	assert.Equal(t, -0.5, motor.Get())
	assert.Equal(t, -0.5, smart.Get())

	smart.AddModifiers(modifier.Scale(2))
	smart.Set(0.9)
	assert.Equal(t, -1.0, motor.Get())

	smart.AddAllModifiers([]modifier.Modifier{modifier.Offset(1)})
	smart.Set(0.9)
	assert.Equal(t, 0.0, motor.Get())
}

func TestSmartMotorController_UsePipeline(t *testing.T) {
	motor := &MockMotorController{}
	smart := NewSmartMotorController(motor, modifier.Negate())

	p, err := modifier.FromSpecs([]modifier.Spec{{Type: "scale", Factor: modifier.Float(0.5)}})
	require.NoError(t, err)
	smart.UsePipeline(p)
	smart.Set(1)
	assert.Equal(t, 0.5, motor.Get())

	smart.UsePipeline(nil)
	smart.Set(1)
	assert.Equal(t, 1.0, motor.Get())
}

func TestSmartMotorController_SafeStateStopsMotor(t *testing.T) {
	motor := &MockMotorController{}
	smart := NewSmartMotorController(motor)

	smart.Set(0.7)
	require.NoError(t, smart.SafeState())
	assert.Equal(t, 0.0, motor.Get())
}

func TestSmartMotorController_ResetZeroesEncoderAndLimiter(t *testing.T) {
	encoder := &MockEncoder{}
	encoder.SetDistance(12.5)
	encoder.SetRate(3)
	motor := &MockMotorController{}
	smart := NewSmartMotorControllerWithEncoder(motor, encoder, modifier.RateLimit(0.2))

	smart.Set(1)
	smart.Set(1)
	assert.InDelta(t, 0.4, motor.Get(), 1e-9)

	require.NoError(t, smart.Reset())
	assert.Equal(t, 0.0, smart.Encoder().Distance())
	assert.Equal(t, 0.0, smart.Encoder().Rate())

	smart.Set(1)
	assert.InDelta(t, 0.2, motor.Get(), 1e-9)
}

func TestSmartMotorController_ResetReportsEncoderFailure(t *testing.T) {
	smart := NewSmartMotorControllerWithEncoder(&MockMotorController{}, &brokenEncoder{})
	assert.EqualError(t, smart.Reset(), "encoder unplugged")
}

func TestSmartMotorController_Defaults(t *testing.T) {
	smart := NewSmartMotorControllerWithEncoder(nil, nil)
	smart.Set(0.3)
	assert.Equal(t, 0.3, smart.Get())
	assert.IsType(t, &MockEncoder{}, smart.Encoder())
}

func TestSmartMotorController_Passthrough(t *testing.T) {
	motor := &MockMotorController{}
	smart := NewSmartMotorController(motor)

	smart.SetInverted(true)
	assert.True(t, smart.Inverted())
	assert.True(t, motor.Inverted())

	smart.Set(0.4)
	smart.Disable()
	assert.True(t, motor.Disabled())
	assert.Equal(t, 0.0, smart.Get())

	smart.Set(0.4)
	assert.False(t, motor.Disabled())
	smart.StopMotor()
	assert.Equal(t, 0.0, smart.Get())
}

func TestMockSolenoid(t *testing.T) {
	s := &MockSolenoid{}
	s.Set(true)
	assert.True(t, s.Get())
	require.NoError(t, s.SafeState())
	assert.False(t, s.Get())

	s.Set(true)
	require.NoError(t, s.Reset())
	assert.False(t, s.Get())
}
