package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrDimension is returned by [Table.WithBorder] when the rectangle is
	// not a valid sub-range of the model's rows and columns.
	ErrDimension = errors.New("invalid border dimensions")

	// ErrNullArgument is returned by [Table.Format], [Table.Size],
	// [Table.Wrap] and [Table.Align] when the matcher or strategy argument
	// is nil.
	ErrNullArgument = errors.New("nil argument")

	// ErrNoMatchingRule's message is the Reason of the
	// [ContractViolationError] that [Table.Render] returns if a pipeline has
	// no matching rule for a cell; the sentinel itself is not wrapped. This
	// does not happen for a Table built with [New], which installs a
	// match-everything rule at position zero of every pipeline.
	ErrNoMatchingRule = errors.New("no matching rule for cell")
)

// ContractViolationError reports that a user-supplied [Formatter],
// [TextWrapper], or [AlignmentStrategy] returned output inconsistent with
// its contract: wrong line count, wrong line width, or a line containing
// '\n'. It always names the cell coordinate and pipeline stage that
// detected the violation.
type ContractViolationError struct {
	Row, Column int
	Stage       string
	Reason      string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("table: contract violation at (row %d, column %d) in %s: %s",
		e.Row, e.Column, e.Stage, e.Reason)
}

func newDimensionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDimension, fmt.Sprintf(format, args...))
}

func newNullArgumentError(context string) error {
	return fmt.Errorf("%w: %s", ErrNullArgument, context)
}
