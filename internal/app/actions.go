package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dshills/blockwalk/internal/engine/document"
	"github.com/dshills/blockwalk/internal/feedback"
	"github.com/dshills/blockwalk/internal/input/keymap"
)

// Announcements spoken after clipboard and file commands.
const (
	msgCopied       = "Copied"
	msgCut          = "Cut"
	msgPasted       = "Pasted"
	msgNotFound     = "Not found"
	msgSaved        = "Saved"
	msgReformatted  = "Reformatted"
	msgInvalidInput = "Invalid input."
	msgDefined      = "Defined"
)

// Names of undoable changes, spoken after undo and redo.
const (
	editTyping          = "typing"
	editNewLine         = "new line"
	editNewBlock        = "new block"
	editDeleteCharacter = "delete character"
	editDeleteBlock     = "delete block"
	editCut             = "cut"
	editPaste           = "paste"
	editReformat        = "reformat"
)

// Dispatch runs an action. Failures are announced rather than returned;
// the only error is ErrQuit.
func (a *App) Dispatch(action keymap.Action) error {
	a.logger.Debug("action %s", action)
	a.history.Seal()
	if action.CancelsSelection() {
		a.doc.CancelSelection()
	}

	switch action {
	case keymap.ActionPreviousLine:
		a.moveLine(a.doc.NavigateToPreviousLine())
	case keymap.ActionNextLine:
		a.moveLine(a.doc.NavigateToNextLine())
	case keymap.ActionPreviousCharacter:
		a.moveCharacter(a.doc.NavigateToPreviousCharacter())
	case keymap.ActionNextCharacter:
		a.moveCharacter(a.doc.NavigateToNextCharacter())
	case keymap.ActionAreaBeginning:
		a.doc.NavigateToAreaBeginning()
		a.speakLine()
	case keymap.ActionAreaEnding:
		a.doc.NavigateToAreaEnding()
		a.speakLine()
	case keymap.ActionLineBeginning:
		a.doc.NavigateToLineBeginning()
	case keymap.ActionLineEnding:
		a.doc.NavigateToLineEnding()
	case keymap.ActionIncreaseLevel:
		a.changeLevel(a.doc.IncreaseIndentationLevel())
	case keymap.ActionDecreaseLevel:
		a.changeLevel(a.doc.DecreaseIndentationLevel())
	case keymap.ActionJumpToLine:
		a.jumpToLine()

	case keymap.ActionFind:
		a.find()
	case keymap.ActionFindNext:
		a.findAgain(document.Forward)
	case keymap.ActionFindPrevious:
		a.findAgain(document.Backward)

	case keymap.ActionSelectPreviousLine:
		a.doc.StartSelection()
		a.moveLine(a.doc.NavigateToPreviousLine())
	case keymap.ActionSelectNextLine:
		a.doc.StartSelection()
		a.moveLine(a.doc.NavigateToNextLine())
	case keymap.ActionCopy:
		a.copySelection(false)
	case keymap.ActionCut:
		a.copySelection(true)
	case keymap.ActionPaste:
		text, err := a.clipboard.ReadAll()
		if err != nil {
			a.fail(NewOperationError("paste", "", err))
			return nil
		}
		a.paste(text)

	case keymap.ActionNewLine:
		a.record(editNewLine, a.doc.CreateNewLine)
	case keymap.ActionNewBlock:
		a.record(editNewBlock, a.doc.CreateNewBlock)
		a.announcer.Play(feedback.CueLevel)
	case keymap.ActionDeleteCharacter:
		var r rune
		err := a.edit(editDeleteCharacter, func() (err error) {
			r, err = a.doc.DeleteCharacter()
			return err
		})
		if err != nil {
			a.announcer.Play(feedback.CueBump)
			return nil
		}
		a.speakCharacter(r)
	case keymap.ActionDeleteBlock:
		a.record(editDeleteBlock, a.doc.Delete)
		a.speakLine()
	case keymap.ActionReformat:
		a.reformat()
	case keymap.ActionUndo:
		a.undo()
	case keymap.ActionRedo:
		a.redo()

	case keymap.ActionAddCharacterDefinition:
		a.addCharacterDefinition()
	case keymap.ActionAddPhraseDefinition:
		a.addPhraseDefinition()
	case keymap.ActionSave:
		a.save()
	case keymap.ActionQuit:
		return ErrQuit

	default:
		a.logger.Warn("unhandled action %s", action)
	}
	return nil
}

// edit runs change and records the prior document state under name
// unless change fails.
func (a *App) edit(name string, change func() error) error {
	before := a.doc.Snapshot()
	if err := change(); err != nil {
		return err
	}
	a.history.Push(name, before)
	return nil
}

// record runs change and records the prior document state under name.
func (a *App) record(name string, change func()) {
	a.history.Push(name, a.doc.Snapshot())
	change()
}

func (a *App) undo() {
	state, info, err := a.history.Undo(a.doc.Snapshot())
	if err != nil {
		a.announcer.Play(feedback.CueBump)
		a.announcer.Speak(userMessage(err))
		return
	}
	a.doc.Restore(state)
	a.announcer.Speak("Undo " + info.Description)
}

func (a *App) redo() {
	state, info, err := a.history.Redo(a.doc.Snapshot())
	if err != nil {
		a.announcer.Play(feedback.CueBump)
		a.announcer.Speak(userMessage(err))
		return
	}
	a.doc.Restore(state)
	a.announcer.Speak("Redo " + info.Description)
}

// moveLine plays the bump cue unless ok, then speaks the current line.
func (a *App) moveLine(ok bool) {
	if !ok {
		a.announcer.Play(feedback.CueBump)
	}
	a.speakLine()
}

func (a *App) moveCharacter(ok bool) {
	if !ok {
		a.announcer.Play(feedback.CueBump)
	}
	a.speakCharacter(a.doc.CurrentCharacter())
}

func (a *App) changeLevel(changed bool) {
	if changed {
		a.announcer.Play(feedback.CueLevel)
	}
	a.speakLine()
}

func (a *App) speakLine() {
	a.announcer.Speak(a.text.RenderText(a.doc.CurrentLine()))
}

func (a *App) speakCharacter(r rune) {
	if def, ok := a.text.RenderCharacter(r); ok {
		a.announcer.Speak(def)
	} else {
		a.announcer.SpeakCharacter(string(r))
	}
	if unicode.IsUpper(r) && a.settings.BeepOnCapitalCharacters {
		a.announcer.Play(feedback.CueCapital)
	}
}

// fail logs err and announces it.
func (a *App) fail(err error) {
	a.logger.Warn("%v", err)
	a.announcer.Speak(userMessage(err))
}

// prompt asks for trimmed, non-empty text.
func (a *App) prompt(title, message, initial string) (string, bool) {
	if a.prompter == nil {
		return "", false
	}
	answer, ok := a.prompter.Prompt(title, message, initial)
	answer = strings.TrimSpace(answer)
	if !ok || answer == "" {
		return "", false
	}
	return answer, true
}

func (a *App) jumpToLine() {
	answer, ok := a.prompt("Jump to line", "Enter the number of the line to jump to.", "")
	if !ok {
		return
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		a.announcer.Speak(msgInvalidInput)
		return
	}
	changed, err := a.doc.JumpToLine(n)
	if err != nil {
		a.fail(err)
		return
	}
	a.changeLevel(changed)
}

func (a *App) find() {
	answer, ok := a.prompt("Find", "Enter the phrase to search for.", a.lastSearch)
	if !ok {
		return
	}
	a.lastSearch = answer
	a.search(document.Forward)
}

// findAgain repeats the last search, asking for a phrase if there is none.
func (a *App) findAgain(dir document.Direction) {
	if a.lastSearch == "" {
		a.find()
		return
	}
	a.search(dir)
}

func (a *App) search(dir document.Direction) {
	found, depthChanged := a.doc.Find(a.lastSearch, dir)
	if !found {
		a.announcer.Speak(msgNotFound)
		return
	}
	a.changeLevel(depthChanged)
}

func (a *App) copySelection(consume bool) {
	op, done := "copy", msgCopied
	if consume {
		op, done = "cut", msgCut
	}

	var text string
	var err error
	if consume {
		err = a.edit(editCut, func() (err error) {
			text, err = a.doc.GetSelectedText(true)
			return err
		})
	} else {
		text, err = a.doc.GetSelectedText(false)
	}
	if err != nil {
		a.fail(err)
		return
	}
	if err := a.clipboard.WriteAll(text); err != nil {
		a.fail(NewOperationError(op, "", err))
		return
	}
	a.announcer.Speak(done)
}

func (a *App) paste(text string) {
	err := a.edit(editPaste, func() error {
		return a.doc.Paste(text)
	})
	if err != nil {
		a.fail(NewOperationError("paste", "", err))
		return
	}
	a.announcer.Speak(msgPasted)
}

func (a *App) reformat() {
	begin, ok := a.prompt("Reformat", "Enter the mark beginning a block.", a.settings.Reformat.Begin)
	if !ok {
		return
	}
	end, ok := a.prompt("Reformat", "Enter the mark ending a block.", a.settings.Reformat.End)
	if !ok {
		return
	}
	err := a.edit(editReformat, func() error {
		return a.doc.Reformat(begin, end)
	})
	if err != nil {
		a.fail(err)
		return
	}
	a.settings.Reformat.Begin, a.settings.Reformat.End = begin, end
	a.announcer.Speak(msgReformatted)
}

func (a *App) addCharacterDefinition() {
	ch := a.doc.CurrentCharacter()
	message := fmt.Sprintf("Enter the definition for the '%c' character.", ch)
	if ch == '\n' {
		message = "Enter the definition for the line break."
	}
	definition, ok := a.prompt("Add character definition", message, "")
	if !ok {
		return
	}
	if err := a.settings.SetCharacter(string(ch), definition); err != nil {
		a.fail(err)
		return
	}
	a.text.AddCharacterDefinition(ch, definition)
	a.announcer.Speak(msgDefined)
}

func (a *App) addPhraseDefinition() {
	phrase, ok := a.prompt("Add phrase definition", "Enter the phrase to define.", "")
	if !ok {
		return
	}
	definition, ok := a.prompt("Add phrase definition", "Enter the definition for the phrase.", "")
	if !ok {
		return
	}
	if err := a.settings.SetString(phrase, definition); err != nil {
		a.fail(err)
		return
	}
	a.text.AddStringDefinition(phrase, definition)
	a.announcer.Speak(msgDefined)
}

// save writes the document, asking for a path when it has none.
func (a *App) save() {
	err := a.doc.Save()
	if errors.Is(err, document.ErrNoFilePath) {
		path, ok := a.prompt("Save as", "Enter the file name.", "")
		if !ok {
			return
		}
		err = a.doc.SaveAs(path)
	}
	if err != nil {
		a.fail(NewOperationError("save", a.doc.FilePath(), err))
		return
	}
	a.logger.Info("saved %s", a.doc.FilePath())
	a.announcer.Speak(msgSaved)
}
