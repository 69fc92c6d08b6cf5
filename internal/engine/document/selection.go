package document

import (
	"slices"
	"strings"

	"github.com/dshills/blockwalk/internal/engine/indent"
)

// StartSelection anchors a line selection at the cursor line. It does
// nothing when a selection is already active.
func (d *Document) StartSelection() {
	if d.hasSelection {
		return
	}
	d.selectionAnchor = d.cursorLine
	d.hasSelection = true
}

// CancelSelection clears the selection anchor.
func (d *Document) CancelSelection() {
	d.hasSelection = false
}

// HasSelection reports whether a selection anchor is set.
func (d *Document) HasSelection() bool {
	return d.hasSelection
}

// SelectionRange returns the inclusive line span of the selection. Without
// an anchor the span is the cursor line's subtree.
func (d *Document) SelectionRange() (begin, end int) {
	anchor := d.cursorLine
	if d.hasSelection {
		anchor = d.selectionAnchor
	}
	if anchor <= d.cursorLine {
		return anchor, d.subtreeEnd(d.cursorLine)
	}
	return d.cursorLine, d.subtreeEnd(anchor)
}

// GetSelectedText renders the selected lines with trailing whitespace
// trimmed. When consume is set the lines are removed and the cursor moves
// to the line preceding them; a cut whose anchor lies above the view depth
// fails with ErrInvalidSelection.
func (d *Document) GetSelectedText(consume bool) (string, error) {
	anchor := d.cursorLine
	if d.hasSelection {
		anchor = d.selectionAnchor
	}
	if consume && d.lines[anchor].Depth < d.viewDepth {
		return "", ErrInvalidSelection
	}

	begin, end := d.SelectionRange()
	text := strings.TrimRight(d.Render(begin, end+1), " \t\r\n")

	if consume {
		d.cursorLine = begin
		d.cursorOffset = 0
		d.NavigateToPreviousLine()
		d.removeLines(begin, end)
		d.hasSelection = false
	}
	return text, nil
}

// Paste inserts clipboard text at the cursor.
//
// Text without line breaks is inserted into the current line with leading
// whitespace trimmed. Multi-line text is normalized as its own document,
// shifted to the view depth and inserted as whole lines: directly after the
// cursor line when it is viewed from a shallower depth, otherwise after the
// cursor line's subtree. The cursor does not move in that case.
func (d *Document) Paste(text string) error {
	if !strings.Contains(strings.TrimRight(text, " \t\r\n"), "\n") {
		chars := []rune(strings.TrimLeft(strings.TrimRight(text, "\r\n"), " \t"))
		l := d.current()
		l.Text = slices.Insert(l.Text, d.cursorOffset, chars...)
		d.cursorOffset += len(chars)
		return nil
	}

	lines, err := indent.Normalize(text)
	if err != nil {
		return err
	}

	at := d.subtreeEnd(d.cursorLine) + 1
	if d.viewDepth < d.CurrentDepth() {
		at = d.cursorLine + 1
	}
	for i := range lines {
		lines[i].Depth += d.viewDepth
	}
	d.insertLines(at, lines...)
	return nil
}
