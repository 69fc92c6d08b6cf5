package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/blockwalk/internal/input/key"
)

func TestActionNames(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ActionFromName(a.String())
		if !ok || got != a {
			t.Errorf("ActionFromName(%q): expected %v, got %v (ok=%v)", a.String(), a, got, ok)
		}
	}

	if a, ok := ActionFromName("Jump-To-Line"); !ok || a != ActionJumpToLine {
		t.Errorf("expected jump_to_line, got %v", a)
	}
	if _, ok := ActionFromName("fly"); ok {
		t.Error("expected unknown action name to fail")
	}
	if got := actionCount.String(); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
}

func TestCancelsSelection(t *testing.T) {
	keep := []Action{ActionLineBeginning, ActionLineEnding, ActionSelectNextLine, ActionSelectPreviousLine, ActionCopy, ActionCut}
	for _, a := range keep {
		if a.CancelsSelection() {
			t.Errorf("%v should keep the selection", a)
		}
	}
	cancel := []Action{ActionNextLine, ActionPreviousCharacter, ActionNewLine, ActionPaste, ActionFind}
	for _, a := range cancel {
		if !a.CancelsSelection() {
			t.Errorf("%v should cancel the selection", a)
		}
	}
}

func TestDefaultLookup(t *testing.T) {
	km := Default()

	tests := []struct {
		ev   key.Event
		want Action
	}{
		{key.NewSpecialEvent(key.KeyUp, key.ModNone), ActionPreviousLine},
		{key.NewSpecialEvent(key.KeyUp, key.ModShift), ActionSelectPreviousLine},
		{key.NewSpecialEvent(key.KeyRight, key.ModAlt), ActionIncreaseLevel},
		{key.NewSpecialEvent(key.KeyHome, key.ModCtrl), ActionAreaBeginning},
		{key.NewSpecialEvent(key.KeyF3, key.ModShift), ActionFindPrevious},
		{key.NewSpecialEvent(key.KeyEnter, key.ModShift), ActionNewBlock},
		{key.NewRuneEvent('s', key.ModCtrl), ActionSave},
		// Terminals report Ctrl+Shift+R as an upper-case rune.
		{key.NewRuneEvent('R', key.ModCtrl), ActionAddPhraseDefinition},
		{key.NewRuneEvent('r', key.ModCtrl), ActionAddCharacterDefinition},
		{key.NewSpecialEvent(key.KeyTab, key.ModNone), ActionReformat},
	}
	for _, tt := range tests {
		got, ok := km.Lookup(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%v): expected %v, got %v (ok=%v)", tt.ev, tt.want, got, ok)
		}
	}

	if _, ok := km.Lookup(key.NewRuneEvent('x', key.ModNone)); ok {
		t.Error("plain characters should not be bound")
	}
}

func TestDefaultCoversEveryAction(t *testing.T) {
	km := Default()
	for _, a := range Actions() {
		if len(km.KeysFor(a)) == 0 {
			t.Errorf("no default binding for %v", a)
		}
	}
}

func TestBindReplaces(t *testing.T) {
	km := New("test")
	if err := km.Bind("Ctrl+G", ActionFind); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := km.Bind("ctrl+g", ActionJumpToLine); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km.Len() != 1 {
		t.Fatalf("expected 1 binding, got %d", km.Len())
	}
	b := km.Bindings()[0]
	if b.Keys != "Ctrl+G" || b.Action != ActionJumpToLine {
		t.Errorf("expected Ctrl+G -> jump_to_line, got %s -> %v", b.Keys, b.Action)
	}
	if b.Event() != key.NewRuneEvent('g', key.ModCtrl) {
		t.Errorf("unexpected event %+v", b.Event())
	}

	if err := km.Unbind("Ctrl+G"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km.Len() != 0 {
		t.Errorf("expected empty keymap, got %d", km.Len())
	}
}

func TestBindInvalid(t *testing.T) {
	km := New("test")
	if err := km.Bind("Hyper+X", ActionFind); !errors.Is(err, key.ErrInvalidSpec) {
		t.Errorf("expected ErrInvalidSpec, got %v", err)
	}
	if err := km.Bind("X", actionCount); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	km := Default()
	err := km.ApplyOverrides(map[string]string{
		"Ctrl+G":  "jump_to_line",
		"Ctrl+J":  "none",
		"Ctrl+K":  "teleport",
		"Bogus+K": "copy",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction in %v", err)
	}
	if !errors.Is(err, key.ErrInvalidSpec) {
		t.Errorf("expected ErrInvalidSpec in %v", err)
	}

	if a, ok := km.Lookup(key.NewRuneEvent('g', key.ModCtrl)); !ok || a != ActionJumpToLine {
		t.Errorf("expected override to apply, got %v", a)
	}
	if _, ok := km.Lookup(key.NewRuneEvent('j', key.ModCtrl)); ok {
		t.Error("expected Ctrl+J to be unbound")
	}
	if _, ok := km.Lookup(key.NewRuneEvent('k', key.ModCtrl)); ok {
		t.Error("failed override should not bind")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	km := Default()
	clone := km.Clone()
	if err := clone.Unbind("Up"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := km.Lookup(key.NewSpecialEvent(key.KeyUp, key.ModNone)); !ok {
		t.Error("original keymap changed")
	}
	if clone.Len() != km.Len()-1 {
		t.Errorf("expected %d bindings, got %d", km.Len()-1, clone.Len())
	}
}
