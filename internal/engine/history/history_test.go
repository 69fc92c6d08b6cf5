package history

import (
	"errors"
	"testing"
)

func TestNewHistory(t *testing.T) {
	h := New[string](0)
	if h.MaxEntries() != DefaultMaxEntries {
		t.Errorf("expected default max entries, got %d", h.MaxEntries())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("expected empty history")
	}
}

func TestUndoRedo(t *testing.T) {
	h := New[string](10)
	state := "a"

	h.Push("append b", state)
	state = "ab"
	h.Push("append c", state)
	state = "abc"

	var (
		info Info
		err  error
	)
	state, info, err = h.Undo(state)
	if err != nil || state != "ab" || info.Description != "append c" {
		t.Fatalf("expected ab/append c, got %q/%q %v", state, info.Description, err)
	}
	state, _, _ = h.Undo(state)
	if state != "a" {
		t.Errorf("expected a, got %q", state)
	}
	if _, _, err := h.Undo(state); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}

	state, info, err = h.Redo(state)
	if err != nil || state != "ab" || info.Description != "append b" {
		t.Fatalf("expected ab/append b, got %q/%q %v", state, info.Description, err)
	}
	state, _, _ = h.Redo(state)
	if state != "abc" {
		t.Errorf("expected abc, got %q", state)
	}
	if _, _, err := h.Redo(state); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := New[int](10)
	h.Push("one", 0)
	h.Undo(1)
	if !h.CanRedo() {
		t.Fatal("expected redo available")
	}

	h.Push("two", 0)
	if h.CanRedo() {
		t.Error("expected push to clear redo")
	}
}

func value(s string) func() string {
	return func() string { return s }
}

func TestExtend(t *testing.T) {
	h := New[string](10)

	h.Extend("typing", value(""))
	h.Extend("typing", func() string {
		t.Error("capture called for an open entry")
		return "a"
	})
	h.Extend("typing", value("ab"))
	if h.UndoCount() != 1 {
		t.Fatalf("expected one entry, got %d", h.UndoCount())
	}

	h.Seal()
	h.Extend("typing", value("abc"))
	if h.UndoCount() != 2 {
		t.Errorf("expected sealed entry to stay closed, got %d", h.UndoCount())
	}

	h.Extend("paste", value("abcd"))
	h.Push("delete", "abcdef")
	h.Extend("paste", value("abcde"))
	if h.UndoCount() != 5 {
		t.Errorf("expected push to end the run, got %d", h.UndoCount())
	}

	state, _, _ := h.Undo("x")
	if state != "abcde" {
		t.Errorf("expected abcde, got %q", state)
	}
}

func TestExtendUndoSeals(t *testing.T) {
	h := New[string](10)
	h.Extend("typing", value(""))
	h.Undo("ab")
	h.Extend("typing", value(""))
	h.Extend("typing", value("c"))
	if h.UndoCount() != 1 {
		t.Errorf("expected one entry, got %d", h.UndoCount())
	}
	if h.CanRedo() {
		t.Error("expected new typing to clear redo")
	}
}

func TestMaxEntries(t *testing.T) {
	h := New[int](3)
	for i := range 5 {
		h.Push("step", i)
	}
	if h.UndoCount() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.UndoCount())
	}
	state, _, _ := h.Undo(5)
	if state != 4 {
		t.Errorf("expected newest entry kept, got %d", state)
	}

	h.SetMaxEntries(1)
	if h.UndoCount() != 1 || h.MaxEntries() != 1 {
		t.Errorf("expected trimmed stack, got %d/%d", h.UndoCount(), h.MaxEntries())
	}
	state, _, _ = h.Undo(4)
	if state != 3 {
		t.Errorf("expected 3, got %d", state)
	}
}

func TestPeekAndClear(t *testing.T) {
	h := New[int](10)
	if _, ok := h.PeekUndo(); ok {
		t.Error("expected nothing to peek")
	}

	h.Push("first", 0)
	info, ok := h.PeekUndo()
	if !ok || info.Description != "first" || info.Timestamp.IsZero() {
		t.Errorf("unexpected peek %+v %v", info, ok)
	}

	h.Undo(1)
	if info, ok := h.PeekRedo(); !ok || info.Description != "first" {
		t.Errorf("unexpected redo peek %+v %v", info, ok)
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("expected cleared history")
	}
}
