package backend

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/blockwalk/internal/input/key"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	// paste collects a bracketed paste; only PollEvent touches it.
	paste *strings.Builder
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal backend on an existing screen,
// such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetString(x, y int, s string, style Style) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return x
	}
	ts := convertStyle(style)
	return drawClusters(x, width, s, func(col int, cluster string, _ int) {
		runes := []rune(cluster)
		t.screen.SetContent(col, y, runes[0], runes[1:], ts)
	})
}

func (t *Terminal) ClearRow(y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep()
}

// PollEvent returns the next event. Key events inside a bracketed paste
// are collected and returned as a single EventPaste.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := t.convertEvent(ev); ok {
			return out
		}
	}
}

// PostEvent queues an interrupt carrying ev.Data. Other event types are
// ignored.
func (t *Terminal) PostEvent(ev Event) error {
	if ev.Type != EventInterrupt {
		return nil
	}
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(ev.Data)); err != nil {
		return ErrEventQueueFull
	}
	return nil
}

// Row returns the text on row y with trailing blanks removed.
func (t *Terminal) Row(y int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		mainc, combc, _, w := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
		for _, r := range combc {
			sb.WriteRune(r)
		}
		if w > 1 {
			x += w - 1
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func (t *Terminal) convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		if e.Start() {
			t.paste = &strings.Builder{}
			return Event{}, false
		}
		if t.paste == nil {
			return Event{}, false
		}
		text := t.paste.String()
		t.paste = nil
		return Event{Type: EventPaste, PasteText: text}, true

	case *tcell.EventKey:
		if t.paste != nil {
			appendPaste(t.paste, e)
			return Event{}, false
		}
		k, ok := convertKey(e)
		if !ok {
			return Event{}, false
		}
		return Event{Type: EventKey, Key: k}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}, true

	default:
		return Event{}, false
	}
}

// appendPaste adds the text a key event stands for during a paste.
func appendPaste(sb *strings.Builder, e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		sb.WriteRune(e.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		sb.WriteByte('\n')
	case tcell.KeyTab:
		sb.WriteByte('\t')
	}
}

// specialKeys maps tcell keys to key.Key. KeyBackspace, KeyTab and KeyEnter
// share codes with Ctrl+H, Ctrl+I and Ctrl+M, so they are resolved here
// before the Ctrl range.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey converts a tcell key event to a normalized key.Event.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods).Normalize(), true
	}
	if special, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(special, mods), true
	}
	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods|key.ModCtrl).Normalize(), true
	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods|key.ModCtrl), true
	}
	return key.Event{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

func convertStyle(s Style) tcell.Style {
	switch s {
	case StyleReverse:
		return tcell.StyleDefault.Reverse(true)
	case StyleBold:
		return tcell.StyleDefault.Bold(true)
	case StyleDim:
		return tcell.StyleDefault.Dim(true)
	default:
		return tcell.StyleDefault
	}
}
