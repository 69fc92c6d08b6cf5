package backend

import (
	"strings"
	"sync"
)

// continuation marks the cells covered by a wide cluster.
const continuation = "\x00"

// NullBackend is an in-memory backend for testing. Events are fed with
// PostEvent or Inject and drawing is read back with Row.
type NullBackend struct {
	mu      sync.Mutex
	width   int
	height  int
	rows    [][]string
	cursorX int
	cursorY int
	visible bool
	beeps   int
	shows   int
	events  chan Event
	closed  bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	b.rows = make([][]string, height)
	for y := range b.rows {
		b.rows[y] = make([]string, width)
	}
	return b
}

// Init implements Backend.
func (b *NullBackend) Init() error {
	return nil
}

// Shutdown implements Backend.
func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

// Size implements Backend.
func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

// SetString implements Backend.
func (b *NullBackend) SetString(x, y int, s string, _ Style) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return x
	}
	return drawClusters(x, b.width, s, func(col int, cluster string, w int) {
		b.rows[y][col] = cluster
		for i := 1; i < w && col+i < b.width; i++ {
			b.rows[y][col+i] = continuation
		}
	})
}

// ClearRow implements Backend.
func (b *NullBackend) ClearRow(y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return
	}
	clear(b.rows[y])
}

// Show implements Backend.
func (b *NullBackend) Show() {
	b.mu.Lock()
	b.shows++
	b.mu.Unlock()
}

// ShowCursor implements Backend.
func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY, b.visible = x, y, true
}

// HideCursor implements Backend.
func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = false
}

// PollEvent implements Backend. It returns EventClosed after Shutdown.
func (b *NullBackend) PollEvent() Event {
	ev, ok := <-b.events
	if !ok {
		return Event{Type: EventClosed}
	}
	return ev
}

// PostEvent implements Backend. Unlike a terminal it accepts any event type.
func (b *NullBackend) PostEvent(ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrEventQueueFull
	}
	select {
	case b.events <- ev:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// Inject queues key events, panicking if the queue is full.
func (b *NullBackend) Inject(events ...Event) {
	for _, ev := range events {
		if err := b.PostEvent(ev); err != nil {
			panic(err)
		}
	}
}

// Beep implements Backend.
func (b *NullBackend) Beep() {
	b.mu.Lock()
	b.beeps++
	b.mu.Unlock()
}

// Beeps returns how many times Beep was called.
func (b *NullBackend) Beeps() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.beeps
}

// Row returns the text drawn on row y with trailing blanks removed.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range b.rows[y] {
		if cell == continuation {
			continue
		}
		if cell == "" {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(cell)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Cursor returns the cursor position and whether it is visible.
func (b *NullBackend) Cursor() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.visible
}
