package document

import "fmt"

// NavigateToPreviousLine moves to the closest preceding line at or above
// the view depth. It fails when the cursor line is shallower than the view
// depth or no such line exists.
func (d *Document) NavigateToPreviousLine() bool {
	if d.lines[d.cursorLine].Depth < d.viewDepth {
		return false
	}

	for i := d.cursorLine - 1; i >= 0; i-- {
		if d.lines[i].Depth <= d.viewDepth {
			d.cursorLine = i
			d.cursorOffset = 0
			return true
		}
	}
	return false
}

// NavigateToNextLine moves to the next sibling at the view depth, skipping
// deeper lines. It fails when the enclosing block ends first.
func (d *Document) NavigateToNextLine() bool {
	for i := d.cursorLine + 1; i < len(d.lines); i++ {
		switch depth := d.lines[i].Depth; {
		case depth == d.viewDepth:
			d.cursorLine = i
			d.cursorOffset = 0
			return true
		case depth < d.viewDepth:
			return false
		}
	}
	return false
}

// NavigateToPreviousCharacter moves one character back, continuing at the
// end of the previous line when at the line start.
func (d *Document) NavigateToPreviousCharacter() bool {
	if d.cursorOffset > 0 {
		d.cursorOffset--
		return true
	}
	if d.NavigateToPreviousLine() {
		d.cursorOffset = d.lastOffset(d.cursorLine)
		return true
	}
	return false
}

// NavigateToNextCharacter moves one character forward, continuing at the
// start of the next line when at the line end.
func (d *Document) NavigateToNextCharacter() bool {
	if d.cursorOffset < d.lastOffset(d.cursorLine) {
		d.cursorOffset++
		return true
	}
	return d.NavigateToNextLine()
}

// NavigateToAreaBeginning moves to the first line of the current block.
func (d *Document) NavigateToAreaBeginning() {
	for d.NavigateToPreviousLine() {
	}
}

// NavigateToAreaEnding moves to the last sibling of the current block.
func (d *Document) NavigateToAreaEnding() {
	for d.NavigateToNextLine() {
	}
}

// NavigateToLineBeginning moves to offset 0.
func (d *Document) NavigateToLineBeginning() {
	d.cursorOffset = 0
}

// NavigateToLineEnding moves onto the trailing newline.
func (d *Document) NavigateToLineEnding() {
	d.cursorOffset = d.lastOffset(d.cursorLine)
}

// IncreaseIndentationLevel descends into the cursor line's children. The
// cursor must be attached to the view depth and the line must have a child.
func (d *Document) IncreaseIndentationLevel() bool {
	if d.viewDepth != d.lines[d.cursorLine].Depth {
		return false
	}
	if !d.hasChildren(d.cursorLine) {
		return false
	}
	d.viewDepth++
	return true
}

// DecreaseIndentationLevel moves to the beginning of the current block and
// ascends one level when that line lies above the view depth.
func (d *Document) DecreaseIndentationLevel() bool {
	if d.viewDepth == 0 {
		return false
	}

	d.NavigateToAreaBeginning()

	if d.lines[d.cursorLine].Depth < d.viewDepth {
		d.viewDepth--
		return true
	}
	return false
}

// JumpToLine moves to the 1-based line n and aligns the view depth with it.
// It reports whether the view depth changed.
func (d *Document) JumpToLine(n int) (bool, error) {
	if n <= 0 {
		return false, ErrLineNumberZero
	}
	if n > len(d.lines) {
		return false, fmt.Errorf("%w: %d, there are %d lines", ErrLineNumberOutOfRange, n, len(d.lines))
	}

	previous := d.viewDepth
	d.cursorLine = n - 1
	d.cursorOffset = 0
	d.viewDepth = d.lines[d.cursorLine].Depth
	return previous != d.viewDepth, nil
}
