package keybind

import (
	"github.com/Zaphoood/rewind/src/util/set"
)

// Binding describes the key chords bound to a single action.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
}

// DefaultBindings returns the platform-independent default chords.
func DefaultBindings() []Binding {
	return []Binding{
		{[]string{"ctrl+z"}, ActionUndo, "Undo last change"},
		{[]string{"ctrl+shift+z"}, ActionRedo, "Redo undone change"},
	}
}

// Resolver maps key chords to actions.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string // action -> keys, for help output
}

// NewResolver creates a resolver from bindings. When several bindings claim
// the same chord, the last one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a chord, or ActionNone if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the chords bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

func dedupe(s []string) []string {
	seen := set.New[string]()
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen.Contains(v) {
			seen.Insert(v)
			result = append(result, v)
		}
	}
	return result
}
