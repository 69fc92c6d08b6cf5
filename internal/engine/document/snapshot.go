package document

// Snapshot is a copy of the document's lines and cursor state.
type Snapshot struct {
	lines        []Line
	cursorLine   int
	cursorOffset int
	viewDepth    int
}

// LineCount returns the number of lines in the snapshot.
func (s Snapshot) LineCount() int {
	return len(s.lines)
}

// Snapshot captures the lines together with the cursor and view depth.
func (d *Document) Snapshot() Snapshot {
	lines := make([]Line, len(d.lines))
	for i, l := range d.lines {
		lines[i] = l.Clone()
	}
	return Snapshot{
		lines:        lines,
		cursorLine:   d.cursorLine,
		cursorOffset: d.cursorOffset,
		viewDepth:    d.viewDepth,
	}
}

// Restore returns the document to a snapshot and clears the selection. The
// file path is unchanged. A zero Snapshot restores a blank document.
func (d *Document) Restore(s Snapshot) {
	if len(s.lines) == 0 {
		d.lines = blankDocument()
		d.cursorLine, d.cursorOffset, d.viewDepth = 0, 0, 0
		d.hasSelection = false
		return
	}

	d.lines = make([]Line, len(s.lines))
	for i, l := range s.lines {
		d.lines[i] = l.Clone()
	}
	d.cursorLine = s.cursorLine
	d.cursorOffset = s.cursorOffset
	d.viewDepth = s.viewDepth
	d.hasSelection = false
}
