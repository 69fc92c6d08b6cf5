package document

import (
	"fmt"
	"os"
	"slices"

	"github.com/dshills/blockwalk/internal/engine/indent"
)

// Line is a document line with its normalized depth.
type Line = indent.Line

// Document is an in-memory sequence of depth-annotated lines with a cursor.
type Document struct {
	lines []Line

	cursorLine   int
	cursorOffset int
	viewDepth    int

	selectionAnchor int
	hasSelection    bool

	filePath string
}

// New creates a document holding one blank root line.
func New() *Document {
	return &Document{lines: blankDocument()}
}

// NewFromString creates a document from raw indented text.
func NewFromString(text string) (*Document, error) {
	d := New()
	if err := d.Load(text); err != nil {
		return nil, err
	}
	return d, nil
}

func blankDocument() []Line {
	return []Line{indent.NewLine(0, "")}
}

// Load replaces the content with normalized raw text and resets the cursor,
// selection and file path. On error the document is left unchanged.
func (d *Document) Load(text string) error {
	lines, err := indent.Normalize(text)
	if err != nil {
		return err
	}

	d.lines = lines
	d.cursorLine = 0
	d.cursorOffset = 0
	d.viewDepth = 0
	d.hasSelection = false
	d.filePath = ""
	return nil
}

// LoadFile reads and loads a file, remembering its path for Save.
func (d *Document) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := d.Load(string(data)); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	d.filePath = path
	return nil
}

// Save writes the rendered document to its file path.
func (d *Document) Save() error {
	if d.filePath == "" {
		return ErrNoFilePath
	}
	return d.SaveAs(d.filePath)
}

// SaveAs writes the rendered document to path and makes it the file path.
func (d *Document) SaveAs(path string) error {
	if err := os.WriteFile(path, []byte(d.Text()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	d.filePath = path
	return nil
}

// FilePath returns the associated file path, or "" for an unsaved document.
func (d *Document) FilePath() string {
	return d.filePath
}

// SetFilePath associates the document with a file without touching content.
func (d *Document) SetFilePath(path string) {
	d.filePath = path
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineText returns the text of line i including its trailing newline.
func (d *Document) LineText(i int) string {
	return string(d.lines[i].Text)
}

// LineDepth returns the depth of line i.
func (d *Document) LineDepth(i int) int {
	return d.lines[i].Depth
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []Line {
	result := make([]Line, len(d.lines))
	for i, l := range d.lines {
		result[i] = l.Clone()
	}
	return result
}

// CursorLine returns the 0-based cursor line.
func (d *Document) CursorLine() int {
	return d.cursorLine
}

// CursorOffset returns the cursor offset within the current line.
func (d *Document) CursorOffset() int {
	return d.cursorOffset
}

// ViewDepth returns the depth at which line navigation operates.
func (d *Document) ViewDepth() int {
	return d.viewDepth
}

// CurrentLine returns the cursor line's text including its trailing newline.
func (d *Document) CurrentLine() string {
	return d.LineText(d.cursorLine)
}

// CurrentDepth returns the cursor line's own depth.
func (d *Document) CurrentDepth() int {
	return d.lines[d.cursorLine].Depth
}

// CurrentCharacter returns the character under the cursor.
func (d *Document) CurrentCharacter() rune {
	return d.lines[d.cursorLine].Text[d.cursorOffset]
}

// current returns the cursor line.
func (d *Document) current() *Line {
	return &d.lines[d.cursorLine]
}

// lastOffset returns the offset of line i's trailing newline.
func (d *Document) lastOffset(i int) int {
	return len(d.lines[i].Text) - 1
}

// subtreeEnd returns the index of the last line in line i's subtree.
func (d *Document) subtreeEnd(i int) int {
	depth := d.lines[i].Depth
	for j := i + 1; j < len(d.lines); j++ {
		if d.lines[j].Depth <= depth {
			return j - 1
		}
	}
	return len(d.lines) - 1
}

// hasChildren reports whether line i is immediately followed by a deeper line.
func (d *Document) hasChildren(i int) bool {
	if i >= len(d.lines)-1 {
		return false
	}
	return d.lines[i+1].Depth > d.lines[i].Depth
}

// removeLines deletes lines [begin, end] and restores the non-empty
// invariant and cursor bounds. A selection anchored on a removed line is
// cancelled; one anchored below the span follows its line.
func (d *Document) removeLines(begin, end int) {
	d.lines = slices.Delete(d.lines, begin, end+1)
	if d.hasSelection {
		switch {
		case d.selectionAnchor > end:
			d.selectionAnchor -= end - begin + 1
		case d.selectionAnchor >= begin:
			d.hasSelection = false
		}
	}
	if len(d.lines) == 0 {
		d.lines = blankDocument()
	}
	if d.cursorLine >= len(d.lines) {
		d.cursorLine = len(d.lines) - 1
		d.cursorOffset = 0
	}
	if d.cursorOffset > d.lastOffset(d.cursorLine) {
		d.cursorOffset = d.lastOffset(d.cursorLine)
	}
}

// insertLines inserts lines before index at. A selection anchor at or
// after at moves with its line.
func (d *Document) insertLines(at int, lines ...Line) {
	d.lines = slices.Insert(d.lines, at, lines...)
	if d.hasSelection && d.selectionAnchor >= at {
		d.selectionAnchor += len(lines)
	}
}
