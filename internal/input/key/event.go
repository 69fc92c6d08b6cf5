package key

import (
	"unicode"
)

// Event is a single key press. Events are comparable and, once normalized,
// usable as map keys.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a character key event.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a special key event.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsChar reports whether the event produces a printable character: a
// printable rune pressed with neither Ctrl nor Alt, or with both (AltGr).
func (e Event) IsChar() bool {
	if e.Key != KeyRune || !unicode.IsPrint(e.Rune) {
		return false
	}
	return e.Modifiers.Has(ModCtrl) == e.Modifiers.Has(ModAlt)
}

// Normalize returns the canonical form used for binding lookups. Chorded
// letters are lower-cased with Shift made explicit, and Shift is dropped
// from plain characters since it is already part of the rune.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	if e.Modifiers.Has(ModCtrl) || e.Modifiers.Has(ModAlt) || e.Modifiers.Has(ModMeta) {
		if unicode.IsUpper(e.Rune) {
			e.Rune = unicode.ToLower(e.Rune)
			e.Modifiers |= ModShift
		}
		return e
	}
	e.Modifiers &^= ModShift
	return e
}

// String returns a specification Parse accepts, like "Ctrl+Shift+R".
func (e Event) String() string {
	e = e.Normalize()

	var name string
	switch {
	case e.Key != KeyRune:
		name = e.Key.String()
	case e.Rune == ' ':
		name = "Space"
	case e.Rune == '+':
		name = "Plus"
	case e.Modifiers != ModNone:
		name = string(unicode.ToUpper(e.Rune))
	default:
		name = string(e.Rune)
	}

	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
