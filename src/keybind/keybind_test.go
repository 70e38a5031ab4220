package keybind

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/Zaphoood/rewind/src/history"
)

type countingTarget struct {
	undos int
	redos int
}

func (c *countingTarget) Undo() { c.undos++ }
func (c *countingTarget) Redo() { c.redos++ }

type fakeSource struct {
	handler     func(chord string)
	registers   int
	unregisters int
}

func (f *fakeSource) Register(handler func(chord string)) {
	f.handler = handler
	f.registers++
}

func (f *fakeSource) Unregister() {
	f.handler = nil
	f.unregisters++
}

func (f *fakeSource) emit(chord string) {
	if f.handler != nil {
		f.handler(chord)
	}
}

func TestResolverDefaults(t *testing.T) {
	assert := assert.New(t)

	r := NewResolver(DefaultBindings())
	assert.Equal(ActionUndo, r.Resolve("ctrl+z"))
	assert.Equal(ActionRedo, r.Resolve("ctrl+shift+z"))
	assert.Equal(ActionNone, r.Resolve("ctrl+x"))
	assert.Equal([]string{"ctrl+z"}, r.KeysFor(ActionUndo))
}

func TestResolverLastBindingWins(t *testing.T) {
	assert := assert.New(t)

	r := NewResolver([]Binding{
		{[]string{"u", "ctrl+z"}, ActionUndo, ""},
		{[]string{"ctrl+z"}, ActionRedo, ""},
	})
	assert.Equal(ActionRedo, r.Resolve("ctrl+z"))
	assert.Equal(ActionUndo, r.Resolve("u"))
}

func TestHandleForwardsToTarget(t *testing.T) {
	assert := assert.New(t)

	target := &countingTarget{}
	a := NewAdapter(target, nil)

	assert.True(a.Handle("ctrl+z"))
	assert.True(a.Handle("ctrl+shift+z"))
	assert.False(a.Handle("x"))
	assert.Equal(1, target.undos)
	assert.Equal(1, target.redos)
}

func TestHandleKey(t *testing.T) {
	assert := assert.New(t)

	target := &countingTarget{}
	a := NewAdapter(target, nil)

	assert.True(a.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlZ}))
	assert.Equal(1, target.undos)

	assert.False(a.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
}

func TestAdapterDrivesStore(t *testing.T) {
	assert := assert.New(t)

	s, err := history.New("a")
	assert.Nil(err)
	s.Set("b")

	a := NewAdapter(s, nil)
	a.Handle("ctrl+z")
	assert.Equal("a", s.Value())
	a.Handle("ctrl+shift+z")
	assert.Equal("b", s.Value())
}

func TestAttachForwardsSourceChords(t *testing.T) {
	assert := assert.New(t)

	target := &countingTarget{}
	source := &fakeSource{}
	a := NewAdapter(target, nil)

	a.Attach(source)
	source.emit("ctrl+z")
	source.emit("ctrl+shift+z")
	source.emit("x")
	assert.Equal(1, target.undos)
	assert.Equal(1, target.redos)
}

func TestReattachReplacesRegistration(t *testing.T) {
	assert := assert.New(t)

	target := &countingTarget{}
	source := &fakeSource{}
	a := NewAdapter(target, nil)

	a.Attach(source)
	a.Attach(source)
	assert.Equal(2, source.registers)
	assert.Equal(1, source.unregisters)

	// Only a single live handler: one emit, one undo
	source.emit("ctrl+z")
	assert.Equal(1, target.undos)
}

func TestDetach(t *testing.T) {
	assert := assert.New(t)

	target := &countingTarget{}
	source := &fakeSource{}
	a := NewAdapter(target, nil)

	// Detaching before attaching must not panic
	a.Detach()

	a.Attach(source)
	a.Detach()
	assert.Equal(1, source.unregisters)
	assert.Nil(source.handler)

	source.emit("ctrl+z")
	assert.Equal(0, target.undos)

	a.Detach()
	assert.Equal(1, source.unregisters)
}
