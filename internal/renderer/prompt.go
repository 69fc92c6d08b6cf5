package renderer

import (
	"slices"
	"strings"

	"github.com/dshills/blockwalk/internal/input/key"
	"github.com/dshills/blockwalk/internal/renderer/backend"
)

// Prompt reads a line of input on the bottom rows. Enter accepts and
// Escape cancels. Events that are not for the prompt are kept for
// NextEvent; a closed backend cancels the prompt.
func (v *View) Prompt(title, message, initial string) (string, bool) {
	input := []rune(initial)
	pos := len(input)

	for {
		v.drawPrompt(title, message, input, pos)

		ev := v.b.PollEvent()
		switch ev.Type {
		case backend.EventClosed:
			v.pending = append(v.pending, ev)
			return "", false
		case backend.EventInterrupt:
			v.pending = append(v.pending, ev)
		case backend.EventPaste:
			text, _, _ := strings.Cut(ev.PasteText, "\n")
			r := []rune(text)
			input = slices.Insert(input, pos, r...)
			pos += len(r)
		case backend.EventKey:
			k := ev.Key
			switch k.Key {
			case key.KeyEnter:
				return string(input), true
			case key.KeyEscape:
				return "", false
			case key.KeyBackspace:
				if pos > 0 {
					input = slices.Delete(input, pos-1, pos)
					pos--
				}
			case key.KeyDelete:
				if pos < len(input) {
					input = slices.Delete(input, pos, pos+1)
				}
			case key.KeyLeft:
				pos = max(0, pos-1)
			case key.KeyRight:
				pos = min(len(input), pos+1)
			case key.KeyHome:
				pos = 0
			case key.KeyEnd:
				pos = len(input)
			default:
				if k.IsChar() {
					input = slices.Insert(input, pos, k.Rune)
					pos++
				}
			}
		}
	}
}

func (v *View) drawPrompt(title, message string, input []rune, pos int) {
	v.drawFrame(v.last)

	label := title
	if message != "" {
		label += ": " + message
	}
	v.drawBottom(label, "")

	width, height := v.b.Size()
	y := height - 1
	v.b.ClearRow(y)

	const marker = "> "
	cursor := backend.StringWidth(marker + string(input[:pos]))
	shift := 0
	if cursor >= width {
		shift = cursor - width + 1
	}
	v.b.SetString(-shift, y, marker+string(input), backend.StyleDefault)
	v.b.ShowCursor(cursor-shift, y)
	v.b.Show()
}
