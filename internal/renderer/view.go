package renderer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/blockwalk/internal/feedback"
	"github.com/dshills/blockwalk/internal/renderer/backend"
)

// IndentWidth is the number of columns drawn per depth level.
const IndentWidth = 4

// Frame is the state drawn on screen. Line is 1-based; Column is a rune
// offset into Text.
type Frame struct {
	FilePath  string
	Text      string
	Line      int
	LineCount int
	Column    int
	Depth     int
	ViewDepth int
	Selection bool
}

// View draws frames and collects announcements on a backend.
type View struct {
	b       backend.Backend
	message string
	last    Frame
	pending []backend.Event
}

// New creates a view drawing on b.
func New(b backend.Backend) *View {
	return &View{b: b}
}

// Speak implements feedback.Announcer by showing text on the message row.
func (v *View) Speak(text string) {
	v.message = text
}

// SpeakCharacter implements feedback.Announcer.
func (v *View) SpeakCharacter(text string) {
	v.message = text
}

// Play implements feedback.Announcer. Only the bump cue is audible.
func (v *View) Play(cue feedback.Cue) {
	if cue == feedback.CueBump {
		v.b.Beep()
	}
}

// Message returns the last announcement.
func (v *View) Message() string {
	return v.message
}

// NextEvent returns events deferred while a prompt was open, then polls
// the backend.
func (v *View) NextEvent() backend.Event {
	if len(v.pending) > 0 {
		ev := v.pending[0]
		v.pending = v.pending[1:]
		return ev
	}
	return v.b.PollEvent()
}

// Draw redraws the whole screen for f.
func (v *View) Draw(f Frame) {
	v.last = f
	v.drawFrame(f)
	v.drawBottom(v.message, statusText(f))
	v.b.Show()
}

func (v *View) drawFrame(f Frame) {
	width, height := v.b.Size()
	for y := 0; y < height; y++ {
		v.b.ClearRow(y)
	}

	v.b.SetString(0, 0, padRight(title(f.FilePath), width), backend.StyleReverse)

	lineRow := min(2, height-1)
	indent := strings.Repeat(" ", f.Depth*IndentWidth)
	text := expandTabs(f.Text)
	prefix := indent + expandTabs(string([]rune(f.Text)[:min(f.Column, len([]rune(f.Text)))]))

	cursor := backend.StringWidth(prefix)
	shift := 0
	if cursor >= width {
		shift = cursor - width + 1
	}
	style := backend.StyleDefault
	if f.Selection {
		style = backend.StyleBold
	}
	v.b.SetString(-shift, lineRow, indent+text, style)
	v.b.ShowCursor(cursor-shift, lineRow)
}

// drawBottom writes the message and status rows.
func (v *View) drawBottom(message, status string) {
	width, height := v.b.Size()
	if height < 4 {
		v.b.ClearRow(height - 1)
		v.b.SetString(0, height-1, status, backend.StyleDim)
		return
	}
	v.b.ClearRow(height - 2)
	v.b.SetString(0, height-2, message, backend.StyleDefault)
	v.b.ClearRow(height - 1)
	v.b.SetString(0, height-1, padRight(status, width), backend.StyleReverse)
}

func title(path string) string {
	if path == "" {
		return "blockwalk: [untitled]"
	}
	return "blockwalk: " + filepath.Base(path)
}

func statusText(f Frame) string {
	s := fmt.Sprintf("Ln %d/%d  Col %d  Depth %d  View %d", f.Line, f.LineCount, f.Column+1, f.Depth, f.ViewDepth)
	if f.Selection {
		s += "  SEL"
	}
	return s
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", IndentWidth))
}

func padRight(s string, width int) string {
	if n := width - backend.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
