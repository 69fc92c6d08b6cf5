package keymap

import (
	"fmt"

	"github.com/dshills/blockwalk/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification, like "Ctrl+Shift+R".
	Keys string

	// Action is the command to execute.
	Action Action

	// Description documents the binding for help output.
	Description string

	// Category groups bindings for display purposes.
	Category string

	event key.Event
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys string, action Action) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// Event returns the parsed key event of a binding taken from a Keymap.
func (b Binding) Event() key.Event {
	return b.event
}

// parse resolves Keys into the normalized event used for lookups.
func (b Binding) parse() (Binding, error) {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return b, fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	b.event = ev
	b.Keys = ev.String()
	return b, nil
}
