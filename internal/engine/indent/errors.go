package indent

import (
	"errors"
	"fmt"
)

// Errors returned by Normalize, wrapped in a *NormalizationError.
var (
	// ErrInconsistentDedent indicates a dedent that matches no enclosing block.
	ErrInconsistentDedent = errors.New("inconsistent dedent")

	// ErrBelowFloor indicates a line indented less than the first content line.
	ErrBelowFloor = errors.New("indentation below first line")
)

// NormalizationError reports the line on which normalization failed.
type NormalizationError struct {
	// Line is the 1-based physical line number.
	Line int
	// Err is ErrInconsistentDedent or ErrBelowFloor.
	Err error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}
