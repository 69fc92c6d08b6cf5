package keymap

// Default returns the default keymap.
func Default() *Keymap {
	km := New("default")
	km.Source = "default"
	for _, b := range defaultBindings() {
		if err := km.Add(b); err != nil {
			panic("default keymap: " + err.Error())
		}
	}
	return km
}

func defaultBindings() []Binding {
	return []Binding{
		// Navigation
		{Keys: "Up", Action: ActionPreviousLine, Description: "Previous sibling line", Category: "Navigation"},
		{Keys: "Down", Action: ActionNextLine, Description: "Next sibling line", Category: "Navigation"},
		{Keys: "Left", Action: ActionPreviousCharacter, Description: "Previous character", Category: "Navigation"},
		{Keys: "Right", Action: ActionNextCharacter, Description: "Next character", Category: "Navigation"},
		{Keys: "Ctrl+Home", Action: ActionAreaBeginning, Description: "First line of the area", Category: "Navigation"},
		{Keys: "Ctrl+End", Action: ActionAreaEnding, Description: "Last line of the area", Category: "Navigation"},
		{Keys: "Home", Action: ActionLineBeginning, Description: "Beginning of line", Category: "Navigation"},
		{Keys: "End", Action: ActionLineEnding, Description: "End of line", Category: "Navigation"},
		{Keys: "Alt+Right", Action: ActionIncreaseLevel, Description: "Enter the block", Category: "Navigation"},
		{Keys: "Alt+Left", Action: ActionDecreaseLevel, Description: "Leave the block", Category: "Navigation"},
		{Keys: "Ctrl+J", Action: ActionJumpToLine, Description: "Jump to line", Category: "Navigation"},

		// Search
		{Keys: "Ctrl+F", Action: ActionFind, Description: "Find", Category: "Search"},
		{Keys: "F3", Action: ActionFindNext, Description: "Find next", Category: "Search"},
		{Keys: "Shift+F3", Action: ActionFindPrevious, Description: "Find previous", Category: "Search"},

		// Selection
		{Keys: "Shift+Up", Action: ActionSelectPreviousLine, Description: "Extend selection up", Category: "Selection"},
		{Keys: "Shift+Down", Action: ActionSelectNextLine, Description: "Extend selection down", Category: "Selection"},
		{Keys: "Ctrl+C", Action: ActionCopy, Description: "Copy", Category: "Selection"},
		{Keys: "Ctrl+X", Action: ActionCut, Description: "Cut", Category: "Selection"},
		{Keys: "Ctrl+V", Action: ActionPaste, Description: "Paste", Category: "Selection"},

		// Editing
		{Keys: "Enter", Action: ActionNewLine, Description: "New line", Category: "Editing"},
		{Keys: "Shift+Enter", Action: ActionNewBlock, Description: "New block", Category: "Editing"},
		{Keys: "Backspace", Action: ActionDeleteCharacter, Description: "Delete character", Category: "Editing"},
		{Keys: "Delete", Action: ActionDeleteBlock, Description: "Delete line and its block", Category: "Editing"},
		{Keys: "Ctrl+I", Action: ActionReformat, Description: "Reformat by marks", Category: "Editing"},
		// Terminals send Tab for Ctrl+I.
		{Keys: "Tab", Action: ActionReformat, Description: "Reformat by marks", Category: "Editing"},
		{Keys: "Ctrl+Z", Action: ActionUndo, Description: "Undo", Category: "Editing"},
		{Keys: "Ctrl+Y", Action: ActionRedo, Description: "Redo", Category: "Editing"},

		// Settings and lifecycle
		{Keys: "Ctrl+R", Action: ActionAddCharacterDefinition, Description: "Define character pronunciation", Category: "Settings"},
		{Keys: "Ctrl+Shift+R", Action: ActionAddPhraseDefinition, Description: "Define phrase pronunciation", Category: "Settings"},
		{Keys: "Ctrl+S", Action: ActionSave, Description: "Save", Category: "File"},
		{Keys: "Ctrl+Q", Action: ActionQuit, Description: "Quit", Category: "File"},
	}
}
