package document

// Direction selects the search direction.
type Direction int

const (
	// Forward searches toward the end of the document.
	Forward Direction = iota
	// Backward searches toward the beginning of the document.
	Backward
)

// String returns the direction name.
func (dir Direction) String() string {
	if dir == Backward {
		return "backward"
	}
	return "forward"
}

// Position is a line/offset location in the document.
type Position struct {
	Line   int
	Offset int
}

// Locate finds term starting at (line, offset) without moving the cursor.
//
// The start position itself is a candidate. A backward match must end at
// or before offset. Lines after the first are scanned from their beginning
// (forward) or end (backward). The search does not wrap.
func (d *Document) Locate(term string, line, offset int, dir Direction) (Position, bool) {
	needle := []rune(term)
	if len(needle) == 0 || line < 0 || line >= len(d.lines) {
		return Position{}, false
	}

	if dir == Backward {
		for i := line; i >= 0; i-- {
			start := offset
			if i != line {
				start = len(d.lines[i].Text) - 1
			}
			if at, ok := searchBackward(d.lines[i].Text, start, needle); ok {
				return Position{Line: i, Offset: at}, true
			}
		}
		return Position{}, false
	}

	for i := line; i < len(d.lines); i++ {
		start := offset
		if i != line {
			start = 0
		}
		if at, ok := searchForward(d.lines[i].Text, start, needle); ok {
			return Position{Line: i, Offset: at}, true
		}
	}
	return Position{}, false
}

// Search finds term from (line, offset) and moves the cursor to the start
// of the match. The cursor is unchanged when nothing is found.
func (d *Document) Search(term string, line, offset int, dir Direction) (Position, bool) {
	pos, ok := d.Locate(term, line, offset, dir)
	if ok {
		d.cursorLine = pos.Line
		d.cursorOffset = pos.Offset
	}
	return pos, ok
}

// Find searches from the cursor, skipping the character under it: forward
// from the character after it or backward from the one before it. On
// success the view depth is aligned with the found line and depthChanged
// reports whether it moved.
func (d *Document) Find(term string, dir Direction) (found, depthChanged bool) {
	offset := d.cursorOffset + 1
	if dir == Backward {
		offset = d.cursorOffset - 1
	}
	if _, ok := d.Search(term, d.cursorLine, offset, dir); !ok {
		return false, false
	}

	previous := d.viewDepth
	d.viewDepth = d.CurrentDepth()
	return true, previous != d.viewDepth
}

// searchForward scans text from start for needle using a streak match that
// restarts just past the streak's first character on a mismatch.
func searchForward(text []rune, start int, needle []rune) (int, bool) {
	if len(text) == 0 {
		return 0, false
	}
	if start < 0 {
		start = 0
	}

	streak := 0
	for pos := start; pos < len(text); {
		if text[pos] == needle[streak] {
			streak++
		} else if streak > 0 {
			pos -= streak - 1
			streak = 0
			continue
		}

		if streak == len(needle) {
			return pos - (streak - 1), true
		}
		pos++
	}
	return 0, false
}

// searchBackward is searchForward mirrored: needle is matched from its last
// character while scanning toward the line start.
func searchBackward(text []rune, start int, needle []rune) (int, bool) {
	if len(text) == 0 || start < 0 {
		return 0, false
	}
	if start >= len(text) {
		start = len(text) - 1
	}

	streak := 0
	for pos := start; ; {
		if text[pos] == needle[len(needle)-1-streak] {
			streak++
		} else if streak > 0 {
			pos += streak - 1
			streak = 0
			continue
		}

		if streak == len(needle) {
			return pos, true
		}
		if pos == 0 {
			return 0, false
		}
		pos--
	}
}
