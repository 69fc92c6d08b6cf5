package key

import (
	"errors"
	"testing"
)

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Enter", KeyEnter},
		{"return", KeyEnter},
		{"esc", KeyEscape},
		{"BACKSPACE", KeyBackspace},
		{"del", KeyDelete},
		{"f3", KeyF3},
		{"F12", KeyF12},
		{"pgdn", KeyPageDown},
		{"rune", KeyNone},
		{"bogus", KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestModifierString(t *testing.T) {
	if got := (ModShift | ModCtrl).String(); got != "Ctrl+Shift" {
		t.Errorf("expected Ctrl+Shift, got %q", got)
	}
	if got := ModNone.String(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"Ctrl+S", NewRuneEvent('s', ModCtrl)},
		{"ctrl+shift+r", NewRuneEvent('r', ModCtrl|ModShift)},
		{"Alt+Left", NewSpecialEvent(KeyLeft, ModAlt)},
		{"Shift+F3", NewSpecialEvent(KeyF3, ModShift)},
		{"Ctrl+Home", NewSpecialEvent(KeyHome, ModCtrl)},
		{"Ctrl+Space", NewRuneEvent(' ', ModCtrl)},
		{"Ctrl+Plus", NewRuneEvent('+', ModCtrl)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %+v, got %+v", tt.spec, tt.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		err  error
	}{
		{"", ErrEmptySpec},
		{"Hyper+X", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"Ctrl+Nope", ErrInvalidSpec},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.err) {
			t.Errorf("Parse(%q): expected %v, got %v", tt.spec, tt.err, err)
		}
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	specs := []string{"a", "Enter", "Ctrl+S", "Ctrl+Shift+R", "Alt+Right", "Shift+F3", "Ctrl+End", "Space"}
	for _, spec := range specs {
		e := MustParse(spec)
		if got := e.String(); got != spec {
			t.Errorf("expected %q, got %q", spec, got)
		}
		again, err := Parse(e.String())
		if err != nil || again != e {
			t.Errorf("round trip of %q failed: %+v, %v", spec, again, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Event
		want Event
	}{
		{NewRuneEvent('R', ModCtrl), NewRuneEvent('r', ModCtrl|ModShift)},
		{NewRuneEvent('A', ModShift), NewRuneEvent('A', ModNone)},
		{Event{Key: KeyUp, Rune: 'x', Modifiers: ModShift}, NewSpecialEvent(KeyUp, ModShift)},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%+v): expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestIsChar(t *testing.T) {
	tests := []struct {
		e    Event
		want bool
	}{
		{NewRuneEvent('x', ModNone), true},
		{NewRuneEvent('X', ModShift), true},
		{NewRuneEvent('x', ModCtrl), false},
		{NewRuneEvent('x', ModAlt), false},
		{NewRuneEvent('@', ModCtrl|ModAlt), true},
		{NewRuneEvent('\t', ModNone), false},
		{NewSpecialEvent(KeyEnter, ModNone), false},
	}
	for _, tt := range tests {
		if got := tt.e.IsChar(); got != tt.want {
			t.Errorf("IsChar(%+v): expected %v, got %v", tt.e, tt.want, got)
		}
	}
}
