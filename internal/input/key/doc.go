// Package key provides key event types and parsing.
//
// An Event is a key (a special key or KeyRune with a character) plus a
// set of modifiers. Normalized events are comparable and serve as keys of
// the keymap.
//
// Specifications are written as modifiers and a key joined with "+":
//
//	"a", "Enter", "F3", "Ctrl+S", "Alt+Left", "Shift+F3", "Ctrl+Shift+R"
package key
