package keymap

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dshills/blockwalk/internal/input/key"
)

// ErrUnknownAction is returned when an override names no known action.
var ErrUnknownAction = errors.New("unknown action")

// Keymap maps normalized key events to actions. One key event maps to at
// most one action; later bindings replace earlier ones.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Source indicates where the bindings came from, like "default" or
	// "user".
	Source string

	bindings map[key.Event]Binding
}

// New creates an empty keymap with the given name.
func New(name string) *Keymap {
	return &Keymap{
		Name:     name,
		bindings: make(map[key.Event]Binding),
	}
}

// Add adds a binding, replacing any existing binding for the same keys.
// Binding to ActionNone removes the keys instead.
func (k *Keymap) Add(b Binding) error {
	b, err := b.parse()
	if err != nil {
		return err
	}
	if b.Action == ActionNone {
		delete(k.bindings, b.event)
		return nil
	}
	if b.Action >= actionCount {
		return fmt.Errorf("binding %q: %w: %d", b.Keys, ErrUnknownAction, b.Action)
	}
	k.bindings[b.event] = b
	return nil
}

// Bind is shorthand for Add(NewBinding(keys, action)).
func (k *Keymap) Bind(keys string, action Action) error {
	return k.Add(NewBinding(keys, action))
}

// Unbind removes the binding for keys, if any.
func (k *Keymap) Unbind(keys string) error {
	return k.Bind(keys, ActionNone)
}

// Lookup returns the action bound to ev. The event is normalized first.
func (k *Keymap) Lookup(ev key.Event) (Action, bool) {
	b, ok := k.bindings[ev.Normalize()]
	if !ok {
		return ActionNone, false
	}
	return b.Action, true
}

// KeysFor returns the key specifications bound to action, sorted.
func (k *Keymap) KeysFor(action Action) []string {
	var keys []string
	for _, b := range k.bindings {
		if b.Action == action {
			keys = append(keys, b.Keys)
		}
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Bindings returns all bindings ordered by action, then keys.
func (k *Keymap) Bindings() []Binding {
	out := slices.Collect(maps.Values(k.bindings))
	slices.SortFunc(out, func(a, b Binding) int {
		if c := cmp.Compare(a.Action, b.Action); c != 0 {
			return c
		}
		return cmp.Compare(a.Keys, b.Keys)
	})
	return out
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	return &Keymap{
		Name:     k.Name,
		Source:   k.Source,
		bindings: maps.Clone(k.bindings),
	}
}

// ApplyOverrides rebinds keys from a map of key specification to action
// name. Valid entries are applied even when others fail; all failures are
// returned joined.
func (k *Keymap) ApplyOverrides(overrides map[string]string) error {
	var errs []error
	for _, spec := range slices.Sorted(maps.Keys(overrides)) {
		name := overrides[spec]
		action, ok := ActionFromName(name)
		if !ok {
			errs = append(errs, fmt.Errorf("binding %q: %w %q", spec, ErrUnknownAction, name))
			continue
		}
		b := NewBinding(spec, action).WithCategory("User")
		if err := k.Add(b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
