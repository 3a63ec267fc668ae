package modifier

// Pipeline is an ordered list of modifiers owned by a single actuator.
type Pipeline struct {
	modifiers []Modifier
}

// NewPipeline creates a pipeline applying mods in the given order. Nil
// modifiers are ignored.
func NewPipeline(mods ...Modifier) *Pipeline {
	p := &Pipeline{}
	p.AddAll(mods)
	return p
}

// Add appends one or more modifiers. They take effect on the next Apply.
func (p *Pipeline) Add(m Modifier, ms ...Modifier) {
	p.AddAll(append([]Modifier{m}, ms...))
}

// AddAll appends every modifier of ms in order.
func (p *Pipeline) AddAll(ms []Modifier) {
	for _, m := range ms {
		if m != nil {
			p.modifiers = append(p.modifiers, m)
		}
	}
}

// Apply runs raw through every modifier, each consuming the previous output.
func (p *Pipeline) Apply(raw float64) float64 {
	if p == nil {
		return raw
	}
	v := raw
	for _, m := range p.modifiers {
		v = m.Apply(v)
	}
	return v
}

// Len reports how many modifiers are registered.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.modifiers)
}

// Reset resets every stateful modifier that supports it. Errors are not
// possible for the built-in modifiers; the first custom failure is returned
// after all modifiers were attempted.
func (p *Pipeline) Reset() error {
	if p == nil {
		return nil
	}
	var first error
	for _, m := range p.modifiers {
		r, ok := m.(interface{ Reset() error })
		if !ok {
			continue
		}
		if err := r.Reset(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
