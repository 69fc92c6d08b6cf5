package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/blockwalk/internal/input/key"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"é", 1},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.in); got != tt.want {
			t.Errorf("StringWidth(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestNullBackendSetString(t *testing.T) {
	b := NewNullBackend(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if end := b.SetString(0, 0, "hello", StyleDefault); end != 5 {
		t.Errorf("expected end column 5, got %d", end)
	}
	if got := b.Row(0); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}

	b.SetString(-2, 1, "abcdef", StyleDefault)
	if got := b.Row(1); got != "cdef" {
		t.Errorf("expected leading columns skipped, got %q", got)
	}

	b.SetString(6, 2, "overflow", StyleDefault)
	if got := b.Row(2); got != "      over" {
		t.Errorf("expected clipped text, got %q", got)
	}

	b.ClearRow(0)
	if got := b.Row(0); got != "" {
		t.Errorf("expected cleared row, got %q", got)
	}

	b.SetString(0, 0, "日x", StyleDefault)
	if got := b.Row(0); got != "日x" {
		t.Errorf("expected wide text, got %q", got)
	}

	// Out of range rows are ignored.
	b.SetString(0, 5, "x", StyleDefault)
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Inject(Event{Type: EventKey, Key: key.NewRuneEvent('a', key.ModNone)})
	if err := b.PostEvent(Interrupt("reload")); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}

	if ev := b.PollEvent(); ev.Type != EventKey || ev.Key.Rune != 'a' {
		t.Errorf("expected key a, got %+v", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("expected interrupt, got %+v", ev)
	}

	b.Beep()
	if b.Beeps() != 1 {
		t.Errorf("expected 1 beep, got %d", b.Beeps())
	}

	b.Shutdown()
	if ev := b.PollEvent(); ev.Type != EventClosed {
		t.Errorf("expected closed, got %+v", ev)
	}
	if err := b.PostEvent(Interrupt(nil)); err == nil {
		t.Error("expected error after shutdown")
	}
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(20, 4)
	t.Cleanup(term.Shutdown)
	return term, sim
}

// nextEvent polls past the resize events a screen posts on start.
func nextEvent(term *Terminal) Event {
	for {
		if ev := term.PollEvent(); ev.Type != EventResize {
			return ev
		}
	}
}

func TestTerminalDraw(t *testing.T) {
	term, _ := newSimTerminal(t)

	w, h := term.Size()
	if w != 20 || h != 4 {
		t.Fatalf("expected 20x4, got %dx%d", w, h)
	}

	term.SetString(2, 1, "block", StyleBold)
	term.Show()
	if got := term.Row(1); got != "  block" {
		t.Errorf("expected drawn text, got %q", got)
	}

	term.ClearRow(1)
	if got := term.Row(1); got != "" {
		t.Errorf("expected cleared row, got %q", got)
	}
}

func TestTerminalKeyEvents(t *testing.T) {
	term, sim := newSimTerminal(t)

	tests := []struct {
		ev   *tcell.EventKey
		want key.Event
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyUp, key.ModShift)},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt), key.NewSpecialEvent(key.KeyRight, key.ModAlt)},
		{tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), key.NewRuneEvent('s', key.ModCtrl)},
		{tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl), key.NewRuneEvent('j', key.ModCtrl)},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyF3, key.ModShift)},
	}
	for _, tt := range tests {
		if err := sim.PostEvent(tt.ev); err != nil {
			t.Fatalf("PostEvent failed: %v", err)
		}
		ev := nextEvent(term)
		if ev.Type != EventKey || ev.Key != tt.want {
			t.Errorf("expected %v, got %+v", tt.want, ev)
		}
	}
}

func TestTerminalBracketedPaste(t *testing.T) {
	term, sim := newSimTerminal(t)

	events := []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone),
		tcell.NewEventPaste(false),
	}
	for _, ev := range events {
		if err := sim.PostEvent(ev); err != nil {
			t.Fatalf("PostEvent failed: %v", err)
		}
	}

	ev := nextEvent(term)
	if ev.Type != EventPaste || ev.PasteText != "a\n b" {
		t.Errorf("expected paste of %q, got %+v", "a\n b", ev)
	}
}

func TestTerminalInterrupt(t *testing.T) {
	term, _ := newSimTerminal(t)

	if err := term.PostEvent(Interrupt(42)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	ev := nextEvent(term)
	if ev.Type != EventInterrupt || ev.Data != 42 {
		t.Errorf("expected interrupt with 42, got %+v", ev)
	}

	// Non-interrupt events are not forwarded to the terminal.
	if err := term.PostEvent(Event{Type: EventKey}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
