// Package keybind forwards key chords to the undo and redo operations of a
// history store. It is a thin shim: the store itself knows nothing about input
// handling.
package keybind

// Action represents a history intent triggered by a key chord.
type Action string

const (
	ActionNone Action = ""
	ActionUndo Action = "undo" // ctrl+z
	ActionRedo Action = "redo" // ctrl+shift+z
)
