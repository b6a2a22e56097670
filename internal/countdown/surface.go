package countdown

// Surface is a mutable text display target. Markers name visual states
// (styling hooks) that can be toggled independently of the text; the
// widget only ever uses the completion marker, but the contract is
// general.
type Surface interface {
	SetText(text string)
	AddMarker(name string)
	RemoveMarker(name string)
}

// Registry resolves surface identifiers to registered surfaces. It is
// the display-surface locator the widget constructor consults; hosts
// register their panes under well-known identifiers before building
// widgets. Registration and lookup happen on the host's goroutine, so
// no locking is done here.
type Registry struct {
	surfaces map[string]Surface
}

func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register binds a surface to an identifier, replacing any previous
// binding.
func (r *Registry) Register(id string, s Surface) {
	r.surfaces[id] = s
}

// Lookup resolves an identifier to its surface. The boolean reports
// whether the identifier was registered.
func (r *Registry) Lookup(id string) (Surface, bool) {
	s, ok := r.surfaces[id]
	return s, ok
}
