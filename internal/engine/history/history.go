package history

import (
	"errors"
	"sync"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the undo stack when New is given no limit.
const DefaultMaxEntries = 1000

// Info describes a recorded change.
type Info struct {
	Description string
	Timestamp   time.Time
}

type entry[T any] struct {
	state T
	info  Info
}

// History manages undo and redo stacks of states of type T.
type History[T any] struct {
	mu sync.Mutex

	undoStack []entry[T]
	redoStack []entry[T]

	// open is set while the top undo entry accepts Extend calls.
	open bool

	maxEntries int
}

// New creates a history holding at most maxEntries undo states.
func New[T any](maxEntries int) *History[T] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History[T]{maxEntries: maxEntries}
}

// Push records before, the state preceding a change described by name.
// It clears the redo stack and seals any open entry.
func (h *History[T]) Push(name string, before T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pushLocked(name, before)
	h.open = false
}

// Extend is like Push with the state taken from capture, but while the
// newest entry was recorded by Extend under the same name and has not been
// sealed, it does nothing and capture is not called.
func (h *History[T]) Extend(name string, capture func() T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.open && len(h.undoStack) > 0 && h.undoStack[len(h.undoStack)-1].info.Description == name {
		return
	}
	h.pushLocked(name, capture())
	h.open = true
}

// Seal closes the entry Extend is adding to.
func (h *History[T]) Seal() {
	h.mu.Lock()
	h.open = false
	h.mu.Unlock()
}

func (h *History[T]) pushLocked(name string, before T) {
	h.undoStack = append(h.undoStack, entry[T]{
		state: before,
		info:  Info{Description: name, Timestamp: time.Now()},
	})
	h.redoStack = nil

	if excess := len(h.undoStack) - h.maxEntries; excess > 0 {
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo returns the state to restore and the undone change. current is kept
// so that Redo can return to it.
func (h *History[T]) Undo(current T) (T, Info, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.open = false
	if len(h.undoStack) == 0 {
		var zero T
		return zero, Info{}, ErrNothingToUndo
	}

	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry[T]{state: current, info: e.info})
	return e.state, e.info, nil
}

// Redo returns the state an Undo left, keeping current for the next Undo.
func (h *History[T]) Redo(current T) (T, Info, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.open = false
	if len(h.redoStack) == 0 {
		var zero T
		return zero, Info{}, ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry[T]{state: current, info: e.info})
	return e.state, e.info, nil
}

// CanUndo returns true if undo is available.
func (h *History[T]) CanUndo() bool {
	return h.UndoCount() > 0
}

// CanRedo returns true if redo is available.
func (h *History[T]) CanRedo() bool {
	return h.RedoCount() > 0
}

// UndoCount returns the number of undo operations available.
func (h *History[T]) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History[T]) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History[T]) PeekUndo() (Info, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undoStack) == 0 {
		return Info{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info, true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History[T]) PeekRedo() (Info, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redoStack) == 0 {
		return Info{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info, true
}

// Clear removes all undo/redo history.
func (h *History[T]) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
	h.open = false
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History[T]) SetMaxEntries(limit int) {
	if limit <= 0 {
		limit = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = limit
	if excess := len(h.undoStack) - limit; excess > 0 {
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History[T]) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
