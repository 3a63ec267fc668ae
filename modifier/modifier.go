package modifier

import "math"

// Modifier transforms one commanded value.
type Modifier interface {
	Apply(value float64) float64
}

// Func adapts a plain function into a Modifier.
type Func func(float64) float64

// Apply implements Modifier.
func (f Func) Apply(value float64) float64 { return f(value) }

// Clamp limits values to [lo, hi]. The bounds are swapped when given in
// reverse order.
func Clamp(lo, hi float64) Modifier {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Func(func(v float64) float64 {
		return math.Max(lo, math.Min(hi, v))
	})
}

// Negate flips the sign of the value.
func Negate() Modifier {
	return Func(func(v float64) float64 { return -v })
}

// Invert negates the value when inverted is true and passes it through otherwise.
func Invert(inverted bool) Modifier {
	if !inverted {
		return Identity()
	}
	return Negate()
}

// Identity passes the value through unchanged.
func Identity() Modifier {
	return Func(func(v float64) float64 { return v })
}

// Deadband zeroes values whose magnitude is below threshold.
func Deadband(threshold float64) Modifier {
	threshold = math.Abs(threshold)
	return Func(func(v float64) float64 {
		if math.Abs(v) < threshold {
			return 0
		}
		return v
	})
}

// Scale multiplies the value by factor.
func Scale(factor float64) Modifier {
	return Func(func(v float64) float64 { return v * factor })
}

// Offset adds delta to the value.
func Offset(delta float64) Modifier {
	return Func(func(v float64) float64 { return v + delta })
}

// RateLimiter bounds how far the output may move between two consecutive
// Apply calls. It remembers its previous output, starting from zero.
type RateLimiter struct {
	maxDelta float64
	previous float64
}

// RateLimit returns a RateLimiter allowing at most maxDelta change per call.
func RateLimit(maxDelta float64) *RateLimiter {
	return &RateLimiter{maxDelta: math.Abs(maxDelta)}
}

// Apply implements Modifier.
func (r *RateLimiter) Apply(v float64) float64 {
	delta := v - r.previous
	switch {
	case delta > r.maxDelta:
		r.previous += r.maxDelta
	case delta < -r.maxDelta:
		r.previous -= r.maxDelta
	default:
		r.previous = v
	}
	return r.previous
}

// Reset forgets the remembered output.
func (r *RateLimiter) Reset() error {
	r.previous = 0
	return nil
}
