// Package modifier implements the ordered transform pipeline applied to an
// actuator's commanded output.
//
// A Pipeline is a list of Modifiers composed at configuration time and
// replayed in registration order on every Apply. Order is significant:
//
//	p := modifier.NewPipeline(modifier.Clamp(0, 10), modifier.Negate())
//	p.Apply(15) // -10
//
//	q := modifier.NewPipeline(modifier.Negate(), modifier.Clamp(0, 10))
//	q.Apply(15) // 0
//
// Stateless modifiers are pure functions of their input. Stateful modifiers
// (RateLimit) evolve only through the Apply calls of the pipeline that owns
// them, so a pipeline must never be shared between actuators.
package modifier
