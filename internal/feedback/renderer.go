package feedback

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// Blank is spoken for empty lines and for a deleted line break.
const Blank = "blank"

// TextRenderer applies pronunciation definitions to text before it is
// spoken.
type TextRenderer struct {
	characters map[rune]string
	strings    map[string]string
	replacer   *strings.Replacer
}

// NewTextRenderer creates a renderer from character and phrase definitions.
// Character keys that are not a single rune are ignored.
func NewTextRenderer(characters, phrases map[string]string) *TextRenderer {
	r := &TextRenderer{
		characters: make(map[rune]string, len(characters)),
		strings:    maps.Clone(phrases),
	}
	if r.strings == nil {
		r.strings = make(map[string]string)
	}
	for k, v := range characters {
		if ch, size := utf8.DecodeRuneInString(k); size == len(k) && ch != utf8.RuneError {
			r.characters[ch] = v
		}
	}
	return r
}

// RenderText returns text as it should be spoken. Empty and whitespace-only
// lines render as "blank". Phrase definitions are applied in a single pass,
// longest phrase first.
func (r *TextRenderer) RenderText(text string) string {
	text = strings.TrimSuffix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return Blank
	}
	if len(r.strings) == 0 {
		return text
	}
	if r.replacer == nil {
		r.replacer = r.buildReplacer()
	}
	return r.replacer.Replace(text)
}

func (r *TextRenderer) buildReplacer() *strings.Replacer {
	phrases := slices.Collect(maps.Keys(r.strings))
	slices.SortFunc(phrases, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	pairs := make([]string, 0, 2*len(phrases))
	for _, p := range phrases {
		pairs = append(pairs, p, r.strings[p])
	}
	return strings.NewReplacer(pairs...)
}

// RenderCharacter returns the definition for ch. A line break renders as
// "blank" and a space as "space". The second result is false when ch
// should be spelled as is.
func (r *TextRenderer) RenderCharacter(ch rune) (string, bool) {
	if def, ok := r.characters[ch]; ok {
		return def, true
	}
	switch ch {
	case '\n':
		return Blank, true
	case ' ':
		return "space", true
	case '\t':
		return "tab", true
	}
	return "", false
}

// AddCharacterDefinition defines how ch is spoken.
func (r *TextRenderer) AddCharacterDefinition(ch rune, definition string) {
	r.characters[ch] = definition
}

// AddStringDefinition defines how a phrase is spoken.
func (r *TextRenderer) AddStringDefinition(phrase, definition string) {
	if phrase == "" {
		return
	}
	r.strings[phrase] = definition
	r.replacer = nil
}
