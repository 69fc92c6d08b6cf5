package document

import "strings"

// IndentWidth is the number of spaces written per depth level.
const IndentWidth = 4

// Render reconstructs flat indented text for lines [begin, end). Content is
// trimmed and prefixed with IndentWidth spaces per depth level; blank lines
// get no prefix. Every rendered line ends with a newline.
func (d *Document) Render(begin, end int) string {
	var sb strings.Builder
	for _, l := range d.lines[begin:end] {
		content := strings.TrimSpace(l.Content())
		if content != "" {
			sb.WriteString(strings.Repeat(" ", l.Depth*IndentWidth))
		}
		sb.WriteString(content)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Text renders the whole document as it is written on save.
func (d *Document) Text() string {
	return d.Render(0, len(d.lines))
}
