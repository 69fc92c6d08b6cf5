// Package backend provides the terminal abstraction the editor draws on.
package backend

import (
	"errors"

	"github.com/dshills/blockwalk/internal/input/key"
)

// ErrEventQueueFull is returned by PostEvent when the event cannot be queued.
var ErrEventQueueFull = errors.New("event queue full")

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventPaste
	EventInterrupt
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is the normalized key for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// PasteText holds the complete text of a bracketed paste.
	PasteText string

	// Data is the payload of an EventInterrupt.
	Data any
}

// Interrupt returns an EventInterrupt carrying data.
func Interrupt(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}

// Style selects how text is drawn.
type Style int

const (
	StyleDefault Style = iota
	StyleReverse
	StyleBold
	StyleDim
)

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// A PollEvent blocked in another goroutine returns EventClosed.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetString draws s at the given position, clipping at both screen
	// edges, and returns the column after the last cell. Negative x skips
	// that many leading columns.
	SetString(x, y int, s string, style Style) int

	// ClearRow blanks a row.
	ClearRow(y int)

	// Show flushes drawing to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event.
	PollEvent() Event

	// PostEvent queues an EventInterrupt. It is safe to call from any
	// goroutine.
	PostEvent(ev Event) error

	// Beep produces an audible bell.
	Beep()
}
