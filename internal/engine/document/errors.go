package document

import "errors"

// Errors returned by document operations.
var (
	// ErrInvalidSelection indicates a cut that would leave the active block.
	ErrInvalidSelection = errors.New("invalid selection for cutting")

	// ErrLineJoinBlocked indicates a line cannot be merged into its predecessor.
	ErrLineJoinBlocked = errors.New("line cannot be joined with previous line")

	// ErrInvalidLineNumber is the parent of the line number errors.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrLineNumberZero indicates a 1-based line number of zero.
	ErrLineNumberZero = newLineNumberError("line numbering starts from 1")

	// ErrLineNumberOutOfRange indicates a line number past the last line.
	ErrLineNumberOutOfRange = newLineNumberError("line number out of range")

	// ErrEmptyMark indicates an empty reformat mark.
	ErrEmptyMark = errors.New("marks can't be empty")

	// ErrNoFilePath indicates a save without an associated file.
	ErrNoFilePath = errors.New("document has no file path")
)

// lineNumberError is a line number error that matches ErrInvalidLineNumber.
type lineNumberError struct {
	msg string
}

func newLineNumberError(msg string) error {
	return &lineNumberError{msg: msg}
}

func (e *lineNumberError) Error() string {
	return e.msg
}

func (e *lineNumberError) Unwrap() error {
	return ErrInvalidLineNumber
}
