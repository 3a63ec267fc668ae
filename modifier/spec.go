package modifier

import (
	"fmt"
	"strings"
)

// Spec declares one modifier in configuration files.
//
//	modifiers:
//	  - type: deadband
//	    threshold: 0.05
//	  - type: clamp
//	    min: -0.8
//	    max: 0.8
//	  - type: invert
//
// Parameters are pointers so that an omitted parameter is rejected instead of
// decoding as zero.
type Spec struct {
	Type      string   `yaml:"type"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	Threshold *float64 `yaml:"threshold,omitempty"`
	Factor    *float64 `yaml:"factor,omitempty"`
	Delta     *float64 `yaml:"delta,omitempty"`
	Rate      *float64 `yaml:"rate,omitempty"`
}

// Float returns a pointer to v, for building Specs in code.
func Float(v float64) *float64 { return &v }

// Build constructs the modifier described by the spec.
func (s Spec) Build() (Modifier, error) {
	kind := strings.ToLower(strings.TrimSpace(s.Type))
	switch kind {
	case "clamp":
		if err := requireParam(kind, "min", s.Min); err != nil {
			return nil, err
		}
		if err := requireParam(kind, "max", s.Max); err != nil {
			return nil, err
		}
		return Clamp(*s.Min, *s.Max), nil
	case "negate", "invert":
		return Negate(), nil
	case "deadband":
		if err := requireParam(kind, "threshold", s.Threshold); err != nil {
			return nil, err
		}
		return Deadband(*s.Threshold), nil
	case "scale":
		if err := requireParam(kind, "factor", s.Factor); err != nil {
			return nil, err
		}
		return Scale(*s.Factor), nil
	case "offset":
		if err := requireParam(kind, "delta", s.Delta); err != nil {
			return nil, err
		}
		return Offset(*s.Delta), nil
	case "rate_limit", "ratelimit":
		if s.Rate == nil || *s.Rate == 0 {
			return nil, fmt.Errorf("modifier: rate_limit requires a non-zero rate")
		}
		return RateLimit(*s.Rate), nil
	case "":
		return nil, fmt.Errorf("modifier: type is required")
	default:
		return nil, fmt.Errorf("modifier: unknown type %q", s.Type)
	}
}

func requireParam(kind, param string, v *float64) error {
	if v == nil {
		return fmt.Errorf("modifier: %s requires %s", kind, param)
	}
	return nil
}

// FromSpecs builds a pipeline from specs in order. It fails on the first
// invalid spec, naming its position.
func FromSpecs(specs []Spec) (*Pipeline, error) {
	p := NewPipeline()
	for i, s := range specs {
		m, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("modifier %d: %w", i, err)
		}
		p.Add(m)
	}
	return p, nil
}
