package keymap

import "strings"

// Action is an editor command a key binding can trigger.
type Action uint8

const (
	// ActionNone is the zero action. Binding a key to it removes the binding.
	ActionNone Action = iota

	// Navigation
	ActionPreviousLine
	ActionNextLine
	ActionPreviousCharacter
	ActionNextCharacter
	ActionAreaBeginning
	ActionAreaEnding
	ActionLineBeginning
	ActionLineEnding
	ActionIncreaseLevel
	ActionDecreaseLevel
	ActionJumpToLine

	// Search
	ActionFind
	ActionFindNext
	ActionFindPrevious

	// Selection and clipboard
	ActionSelectPreviousLine
	ActionSelectNextLine
	ActionCopy
	ActionCut
	ActionPaste

	// Editing
	ActionNewLine
	ActionNewBlock
	ActionDeleteCharacter
	ActionDeleteBlock
	ActionReformat
	ActionUndo
	ActionRedo

	// Settings and lifecycle
	ActionAddCharacterDefinition
	ActionAddPhraseDefinition
	ActionSave
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:                   "none",
	ActionPreviousLine:           "previous_line",
	ActionNextLine:               "next_line",
	ActionPreviousCharacter:      "previous_character",
	ActionNextCharacter:          "next_character",
	ActionAreaBeginning:          "area_beginning",
	ActionAreaEnding:             "area_ending",
	ActionLineBeginning:          "line_beginning",
	ActionLineEnding:             "line_ending",
	ActionIncreaseLevel:          "increase_level",
	ActionDecreaseLevel:          "decrease_level",
	ActionJumpToLine:             "jump_to_line",
	ActionFind:                   "find",
	ActionFindNext:               "find_next",
	ActionFindPrevious:           "find_previous",
	ActionSelectPreviousLine:     "select_previous_line",
	ActionSelectNextLine:         "select_next_line",
	ActionCopy:                   "copy",
	ActionCut:                    "cut",
	ActionPaste:                  "paste",
	ActionNewLine:                "new_line",
	ActionNewBlock:               "new_block",
	ActionDeleteCharacter:        "delete_character",
	ActionDeleteBlock:            "delete_block",
	ActionReformat:               "reformat",
	ActionUndo:                   "undo",
	ActionRedo:                   "redo",
	ActionAddCharacterDefinition: "add_character_definition",
	ActionAddPhraseDefinition:    "add_phrase_definition",
	ActionSave:                   "save",
	ActionQuit:                   "quit",
}

// String returns the action's configuration name.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ActionFromName returns the action with the given configuration name.
// Dashes are accepted in place of underscores and case is ignored.
func ActionFromName(name string) (Action, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for a := ActionNone; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Actions returns every action except ActionNone, in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionNone + 1; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// CancelsSelection reports whether running the action clears an active
// selection first. Moves within the line and selection extension keep it.
func (a Action) CancelsSelection() bool {
	switch a {
	case ActionLineBeginning, ActionLineEnding,
		ActionSelectPreviousLine, ActionSelectNextLine,
		ActionCopy, ActionCut, ActionNone:
		return false
	}
	return true
}
