package document

import (
	"regexp"
	"strings"

	"github.com/dshills/blockwalk/internal/engine/indent"
)

type commentKind int

const (
	noComment commentKind = iota
	lineComment
	blockComment
)

// reformatter derives depths from explicit begin/end marks. Marks inside
// string literals and comments are ignored. String and block comment state
// carries across lines; line comments end with their line.
type reformatter struct {
	begin, end string
	pattern    *regexp.Regexp

	depth   int // signed; clamped only when assigned
	quote   string
	comment commentKind
}

func newReformatter(begin, end string) *reformatter {
	pattern := regexp.MustCompile(
		"(" + regexp.QuoteMeta(begin) + ")|(" + regexp.QuoteMeta(end) + `)|//|#|/\*|\*/|"|'`,
	)
	return &reformatter{begin: begin, end: end, pattern: pattern}
}

// line scans one line and returns the depth it is assigned.
func (r *reformatter) line(content string) int {
	contentStart := indent.RawColumn(content)
	delta := 0
	opensAtStart, closesAtStart := false, false

	for _, m := range r.pattern.FindAllStringSubmatchIndex(content, -1) {
		token := content[m[0]:m[1]]
		code := r.quote == "" && r.comment == noComment

		switch {
		case m[2] >= 0:
			if code {
				if m[0] == contentStart {
					opensAtStart = true
				}
				delta++
			}
		case m[4] >= 0:
			if code {
				if m[0] == contentStart {
					closesAtStart = true
				}
				delta--
			}
		case token == `"` || token == "'":
			if r.comment != noComment {
				break
			}
			if r.quote == "" {
				r.quote = token
			} else if r.quote == token {
				r.quote = ""
			}
		case token == "*/":
			if r.comment == blockComment {
				r.comment = noComment
			}
		case token == "/*":
			if code {
				r.comment = blockComment
			}
		default: // "//" or "#"
			if code {
				r.comment = lineComment
			}
		}
	}

	if r.comment == lineComment {
		r.comment = noComment
	}

	var assigned int
	switch {
	case delta > 0 && opensAtStart && strings.TrimSpace(content) != r.begin:
		// An opener followed by more content on its own line sits inside
		// the block it opens.
		r.depth += delta
		assigned = r.depth
	case closesAtStart:
		assigned = r.depth - 1
		r.depth += delta
	default:
		assigned = r.depth
		r.depth += delta
	}
	return max(assigned, 0)
}

// Reformat recomputes every line's depth from begin and end marks, such as
// "{" and "}". Line text is not modified. Opening and closing lines sit at
// the outer level and the lines between them one level deeper.
func (d *Document) Reformat(begin, end string) error {
	if begin == "" || end == "" {
		return ErrEmptyMark
	}

	r := newReformatter(begin, end)
	for i := range d.lines {
		d.lines[i].Depth = r.line(d.lines[i].Content())
	}
	if d.viewDepth > d.CurrentDepth() {
		d.viewDepth = d.CurrentDepth()
	}
	return nil
}
