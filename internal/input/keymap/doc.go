// Package keymap maps key events to editor actions.
//
// An Action is a closed enum of editor commands. A Keymap holds at most one
// action per normalized key event, so lookup is a single map access:
//
//	km := keymap.Default()
//	if err := km.ApplyOverrides(settings.Keys); err != nil {
//	    // report the bad entries; valid ones are already applied
//	}
//	action, ok := km.Lookup(ev)
//
// Key specifications use the key package syntax ("Ctrl+Shift+R", "Alt+Left",
// "F3"). Action names in overrides are snake_case, like "jump_to_line";
// binding a key to "none" removes it.
package keymap
