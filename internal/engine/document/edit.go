package document

import (
	"slices"

	"github.com/dshills/blockwalk/internal/engine/indent"
)

// Insert inserts a character at the cursor and advances past it.
func (d *Document) Insert(r rune) {
	l := d.current()
	l.Text = slices.Insert(l.Text, d.cursorOffset, r)
	d.cursorOffset++
}

// CreateNewLine either opens a blank sibling line or splits the current
// line at the cursor.
//
// At the end of a line the blank line is created at the view depth after
// the cursor line's subtree, or directly after the cursor line when the
// cursor is viewed from a shallower depth. Otherwise the text before the
// cursor becomes a new line above, and the cursor stays on the remainder.
func (d *Document) CreateNewLine() {
	if d.cursorOffset == d.lastOffset(d.cursorLine) {
		at := d.cursorLine + 1
		if d.viewDepth == d.CurrentDepth() {
			at = d.subtreeEnd(d.cursorLine) + 1
		}
		d.insertLines(at, indent.NewLine(d.viewDepth, ""))
		d.cursorLine = at
		d.cursorOffset = 0
		return
	}

	l := d.current()
	prefix := make([]rune, 0, d.cursorOffset+1)
	prefix = append(prefix, l.Text[:d.cursorOffset]...)
	prefix = append(prefix, indent.Newline)
	l.Text = slices.Clone(l.Text[d.cursorOffset:])

	d.insertLines(d.cursorLine, Line{Depth: l.Depth, Text: prefix})
	d.cursorLine++
	d.cursorOffset = 0
}

// CreateNewBlock moves the text after the cursor into a new first child of
// the current line and descends into it.
func (d *Document) CreateNewBlock() {
	l := d.current()
	child := Line{
		Depth: l.Depth + 1,
		Text:  slices.Clone(l.Text[d.cursorOffset:]),
	}
	l.Text = append(l.Text[:d.cursorOffset:d.cursorOffset], indent.Newline)

	d.insertLines(d.cursorLine+1, child)
	d.cursorLine++
	d.cursorOffset = 0
	d.viewDepth = child.Depth
}

// DeleteCharacter deletes the character before the cursor and returns it.
//
// At the start of a line the line is merged into the previous line at the
// view depth and the newline is returned. The merge fails with
// ErrLineJoinBlocked when the line has children or there is no such line.
func (d *Document) DeleteCharacter() (rune, error) {
	if d.cursorOffset > 0 {
		l := d.current()
		r := l.Text[d.cursorOffset-1]
		l.Text = slices.Delete(l.Text, d.cursorOffset-1, d.cursorOffset)
		d.cursorOffset--
		return r, nil
	}

	original := d.cursorLine
	if d.hasChildren(original) || !d.NavigateToPreviousLine() {
		return 0, ErrLineJoinBlocked
	}

	target := d.current()
	d.cursorOffset = d.lastOffset(d.cursorLine)
	target.Text = append(target.Text[:d.cursorOffset], d.lines[original].Text...)
	d.removeLines(original, original)
	return indent.Newline, nil
}

// Delete removes the cursor line together with its subtree and moves to
// the previous line at the view depth. An emptied document gets a single
// blank root line.
func (d *Document) Delete() {
	begin := d.cursorLine
	end := d.subtreeEnd(begin)
	if !d.NavigateToPreviousLine() {
		d.cursorOffset = 0
	}
	d.removeLines(begin, end)
}
