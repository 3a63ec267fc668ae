package capability

// Handle is an opaque reference to one member of the composed robot.
type Handle struct {
	// Name identifies the member: the struct field name, or the name given to
	// Registry.Register.
	Name string
	// Member is the value implementing the capability.
	Member any
}

// Index is the ordered set of members implementing one capability.
// The zero value is an empty index.
type Index struct {
	kind    Kind
	handles []Handle
}

func newIndex(kind Kind, handles []Handle) Index {
	return Index{kind: kind, handles: handles}
}

// Kind returns the capability this index was built for.
func (i Index) Kind() Kind { return i.kind }

// Len returns the number of members.
func (i Index) Len() int { return len(i.handles) }

// Handles returns a copy of the members in discovery order.
func (i Index) Handles() []Handle {
	out := make([]Handle, len(i.handles))
	copy(out, i.handles)
	return out
}

// Names returns the member names in discovery order.
func (i Index) Names() []string {
	out := make([]string, len(i.handles))
	for n, h := range i.handles {
		out[n] = h.Name
	}
	return out
}
