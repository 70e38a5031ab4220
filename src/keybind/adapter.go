package keybind

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Target is the part of the history store the adapter drives.
type Target interface {
	Undo()
	Redo()
}

// Source is an external input source emitting key chords. Register installs a
// handler that receives every chord; Unregister removes it again.
type Source interface {
	Register(handler func(chord string))
	Unregister()
}

// Adapter translates key chords into Undo/Redo calls on its target.
type Adapter struct {
	target   Target
	resolver *Resolver
	source   Source
}

// NewAdapter creates an adapter for the given target. A nil resolver means the
// default ctrl+z / ctrl+shift+z bindings.
func NewAdapter(target Target, resolver *Resolver) *Adapter {
	if resolver == nil {
		resolver = NewResolver(DefaultBindings())
	}
	return &Adapter{target: target, resolver: resolver}
}

// Handle forwards a chord to the target. It reports whether the chord was
// bound to an action.
func (a *Adapter) Handle(chord string) bool {
	switch a.resolver.Resolve(chord) {
	case ActionUndo:
		a.target.Undo()
		return true
	case ActionRedo:
		a.target.Redo()
		return true
	}
	return false
}

// HandleKey is Handle for bubbletea key messages.
func (a *Adapter) HandleKey(msg tea.KeyMsg) bool {
	return a.Handle(msg.String())
}

// Attach registers the adapter's handler with an input source. Attaching while
// already attached replaces the previous registration, so a source never ends
// up with two handlers from the same adapter.
func (a *Adapter) Attach(source Source) {
	if a.source != nil {
		a.source.Unregister()
	}
	a.source = source
	source.Register(func(chord string) {
		a.Handle(chord)
	})
}

// Detach unregisters the adapter from its source. Safe to call when never
// attached, and safe to call more than once.
func (a *Adapter) Detach() {
	if a.source == nil {
		return
	}
	a.source.Unregister()
	a.source = nil
}
