package indent

import "strings"

// Newline terminates every line's text.
const Newline = '\n'

// Line is a line of text together with its normalized block depth.
type Line struct {
	// Depth is the block nesting level, 0 for the root.
	Depth int
	// Text is the line content; it always ends with Newline.
	Text []rune
}

// NewLine creates a line from content without a trailing newline.
func NewLine(depth int, content string) Line {
	text := make([]rune, 0, len(content)+1)
	text = append(text, []rune(content)...)
	return Line{Depth: depth, Text: append(text, Newline)}
}

// Content returns the text without the trailing newline.
func (l Line) Content() string {
	return string(l.Text[:len(l.Text)-1])
}

// Clone returns a deep copy of the line.
func (l Line) Clone() Line {
	text := make([]rune, len(l.Text))
	copy(text, l.Text)
	return Line{Depth: l.Depth, Text: text}
}

// deferredPrefixes mark lines that do not take part in column bookkeeping.
var deferredPrefixes = []string{
	"//", "#", ";", "/*", `"""`,
	"<<<<<<<", ">>>>>>>", "=======",
}

// SplitLines splits raw text into physical lines. Carriage returns before a
// newline are dropped and a single trailing newline does not produce an
// extra empty line. Empty input yields one empty line.
func SplitLines(raw string) []string {
	raw = strings.TrimSuffix(raw, "\n")
	parts := strings.Split(raw, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// Normalize splits raw text into lines and assigns each a depth derived
// from its leading whitespace. Non-deferred lines are stripped of that
// whitespace; deferred lines keep it.
func Normalize(raw string) ([]Line, error) {
	return NormalizeLines(SplitLines(raw))
}

// NormalizeLines is Normalize for text that was already split into lines.
func NormalizeLines(physical []string) ([]Line, error) {
	if len(physical) == 0 {
		physical = []string{""}
	}

	lines := make([]Line, len(physical))
	deferred := make([]bool, len(physical))

	var (
		steps    []int // columns of the enclosing blocks, steps[0] is the floor
		depth    int
		previous int
	)

	for i, content := range physical {
		column := RawColumn(content)
		if IsDeferred(content) {
			deferred[i] = true
			lines[i] = NewLine(0, content)
			continue
		}

		if steps == nil {
			steps = []int{column}
			previous = column
		}

		switch {
		case column < steps[0]:
			return nil, &NormalizationError{Line: i + 1, Err: ErrBelowFloor}
		case column > previous:
			steps = append(steps, column)
			depth++
		case column < previous:
			found := false
			for j := len(steps) - 1; j >= 0; j-- {
				if steps[j] == column {
					depth = j
					steps = steps[:j+1]
					found = true
					break
				}
			}
			if !found {
				return nil, &NormalizationError{Line: i + 1, Err: ErrInconsistentDedent}
			}
		}

		lines[i] = NewLine(depth, content[column:])
		previous = column
	}

	// Deferred lines take the depth of the line below them, except at root.
	next := lines[len(lines)-1].Depth
	for i := len(lines) - 1; i >= 0; i-- {
		if deferred[i] && next > 0 {
			lines[i].Depth = next
		}
		next = lines[i].Depth
	}

	return lines, nil
}

// RawColumn returns the number of leading space and tab bytes.
func RawColumn(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return i
		}
	}
	return len(s)
}

// IsDeferred reports whether a line is blank or starts with a comment or
// merge-marker prefix once trimmed.
func IsDeferred(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	for _, p := range deferredPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
